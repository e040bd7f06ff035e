package service

import (
	"github.com/gin-gonic/gin"

	"github.com/openpanel/ai-service/app/core"
	"github.com/openpanel/ai-service/app/response"
	"github.com/openpanel/ai-service/cmd/service/handler"
	"github.com/openpanel/ai-service/cmd/service/middleware"
)

// NewHttpSrv builds the engine with every route registered.
func NewHttpSrv(appCore *core.Core) *handler.HttpSrv {
	httpSrv := &handler.HttpSrv{
		Core:   appCore,
		Engine: appCore.HttpEngine(),
	}
	setupHttpRouter(httpSrv)
	return httpSrv
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.RedirectTrailingSlash = false
	s.Engine.Use(gin.Recovery())
	s.Engine.Use(middleware.I18n(), response.NewResponse())
	s.Engine.Use(middleware.Cors)
	s.Engine.Use(middleware.Metrics(s.Core))

	s.Engine.GET("/health", s.Health)
	s.Engine.GET("/metrics", s.Core.Metrics().ExportHandler())

	resource := s.Engine.Group("/resources")
	{
		resource.POST("/", s.CreateResource)
		resource.POST("", s.CreateResource)
		resource.GET("/", s.ListResource)
		resource.GET("", s.ListResource)
		resource.GET("/:id", s.GetResource)
		resource.PUT("/:id", s.UpdateResource)
		resource.DELETE("/:id", s.DeleteResource)
	}
}
