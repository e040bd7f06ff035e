package core

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DEFAULT_ADDR     = ":8000"
	DEFAULT_APP_NAME = "OpenPanel AI Service"
	DEFAULT_DB_NAME  = "openpanel_ai"
	DEFAULT_LOG      = "info"

	STORE_DRIVER_MONGO  = "mongo"
	STORE_DRIVER_MEMORY = "memory"
)

// MustLoadBaseConfig reads the toml file at path, or the environment when
// path is empty, and panics when the result is not usable.
func MustLoadBaseConfig(path string) CoreConfig {
	cfg, err := LoadBaseConfig(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func LoadBaseConfig(path string) (CoreConfig, error) {
	var conf CoreConfig
	if path == "" {
		conf = LoadBaseConfigFromENV()
	} else {
		raw, err := os.ReadFile(path)
		if err != nil {
			return conf, err
		}
		if err = toml.Unmarshal(raw, &conf); err != nil {
			return conf, err
		}
	}

	conf.SetDefaults()
	if err := conf.Validate(); err != nil {
		return conf, err
	}
	return conf, nil
}

// LoadBaseConfigFromENV reads .env from the working directory first. Values
// already present in the environment win.
func LoadBaseConfigFromENV() CoreConfig {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", slog.String("error", err.Error()))
	}

	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr    string      `toml:"addr"`
	AppName string      `toml:"app_name"`
	Log     Log         `toml:"log"`
	Store   StoreConfig `toml:"store"`
	Mongo   MongoConfig `toml:"mongo"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("AI_SERVICE_ADDRESS")
	c.AppName = os.Getenv("APP_NAME")
	c.Log.FromENV()
	c.Store.FromENV()
	c.Mongo.FromENV()
}

func (c *CoreConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = DEFAULT_ADDR
	}
	if c.AppName == "" {
		c.AppName = DEFAULT_APP_NAME
	}
	if c.Log.Level == "" {
		c.Log.Level = DEFAULT_LOG
	}
	if c.Store.Driver == "" {
		c.Store.Driver = STORE_DRIVER_MONGO
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = DEFAULT_DB_NAME
	}
}

// Validate rejects configurations the service cannot start with.
func (c CoreConfig) Validate() error {
	switch c.Store.Driver {
	case STORE_DRIVER_MONGO:
		if c.Mongo.URL == "" {
			return fmt.Errorf("mongo url is required, set MONGODB_URL or mongo.url")
		}
	case STORE_DRIVER_MEMORY:
	default:
		return fmt.Errorf("unsupported store driver %q", c.Store.Driver)
	}
	return nil
}

type StoreConfig struct {
	Driver string `toml:"driver"`
}

func (s *StoreConfig) FromENV() {
	s.Driver = strings.ToLower(os.Getenv("STORE_DRIVER"))
}

type MongoConfig struct {
	URL      string `toml:"url"`
	Database string `toml:"database"`
}

func (m *MongoConfig) FromENV() {
	m.URL = os.Getenv("MONGODB_URL")
	m.Database = os.Getenv("DB_NAME")
}

func (m MongoConfig) FormatURL() string {
	return m.URL
}

func (m MongoConfig) DatabaseName() string {
	return m.Database
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("LOG_LEVEL")
	l.Path = os.Getenv("LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "critical":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
