package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/openpanel/ai-service/app/core"
	"github.com/openpanel/ai-service/app/response"
	"github.com/openpanel/ai-service/pkg/types"
)

const SERVICE_NAME = "ai-service"

// HttpSrv HTTP服务结构
type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}

func (s *HttpSrv) Health(c *gin.Context) {
	response.APISuccess(c, types.HealthStatus{
		Status:  "ok",
		Service: SERVICE_NAME,
	})
}
