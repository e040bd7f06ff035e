package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	v1 "github.com/openpanel/ai-service/app/logic/v1"
	"github.com/openpanel/ai-service/app/response"
	"github.com/openpanel/ai-service/pkg/i18n"
	"github.com/openpanel/ai-service/pkg/types"
	"github.com/openpanel/ai-service/pkg/utils"
)

func (s *HttpSrv) CreateResource(c *gin.Context) {
	var (
		err error
		req types.CreateResource
	)
	if err = utils.BindJSONWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}
	if problems := req.Validate(); len(problems) > 0 {
		response.APIError(c, utils.InvalidArgument("HttpSrv.CreateResource.Validate", errors.New(strings.Join(problems, "; "))))
		return
	}

	data, err := v1.NewResourceLogic(c, s.Core, s.Core.ResourceStore()).Create(*req.Name, *req.Type, *req.Content)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, data)
}

type ListResourceRequest struct {
	Limit *int64 `form:"limit"`
}

func (s *HttpSrv) ListResource(c *gin.Context) {
	var (
		err error
		req ListResourceRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	limit := int64(types.DEFAULT_LIST_LIMIT)
	if req.Limit != nil {
		limit = *req.Limit
	}

	list, err := v1.NewResourceLogic(c, s.Core, s.Core.ResourceStore()).List(limit)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, list)
}

func (s *HttpSrv) GetResource(c *gin.Context) {
	id, _ := c.Params.Get("id")

	data, err := v1.NewResourceLogic(c, s.Core, s.Core.ResourceStore()).Get(id)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, data)
}

func (s *HttpSrv) UpdateResource(c *gin.Context) {
	var (
		err error
		req types.UpdateResource
	)
	id, _ := c.Params.Get("id")
	if err = utils.BindJSONWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	data, err := v1.NewResourceLogic(c, s.Core, s.Core.ResourceStore()).Update(id, req)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, data)
}

func (s *HttpSrv) DeleteResource(c *gin.Context) {
	id, _ := c.Params.Get("id")

	if err := v1.NewResourceLogic(c, s.Core, s.Core.ResourceStore()).Delete(id); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, types.DeleteResourceResult{
		Message: response.Localize(c, i18n.MESSAGE_RESOURCE_DELETED, map[string]interface{}{"ID": id}),
	})
}
