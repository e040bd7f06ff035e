package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/openpanel/ai-service/app/core"
)

const shutdownTimeout = 10 * time.Second

type Options struct {
	ConfigPath string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init service by given toml config, environment variables are used when empty")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "ai resource service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	cfg, err := core.LoadBaseConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	app, err := core.SetupCore(context.Background(), cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, app)
}

// serve blocks until ctx is done or the listener fails, then drains
// in-flight requests and closes the store connection.
func serve(ctx context.Context, app *core.Core) error {
	httpSrv := NewHttpSrv(app)
	server := &http.Server{
		Addr:    app.Cfg().Addr,
		Handler: httpSrv.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown", slog.String("error", err.Error()))
	}
	if err := app.Shutdown(shutdownCtx); err != nil {
		slog.Error("store shutdown", slog.String("error", err.Error()))
	}
	return serveErr
}
