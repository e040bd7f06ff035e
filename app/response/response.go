package response

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openpanel/ai-service/pkg/errors"
	"github.com/openpanel/ai-service/pkg/i18n"
	"github.com/openpanel/ai-service/pkg/utils"
)

// 常量定义
const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-Id"
	LocalizerKey    = "i18n"
)

// ErrorBody is the uniform failure payload.
type ErrorBody struct {
	Detail string `json:"detail"`
}

func ProvideResponseLocalizer(l i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LocalizerKey, l)
	}
}

func InjectResponseLocalizer(c *gin.Context) (i18n.Localizer, bool) {
	l, ok := c.Get(LocalizerKey)
	if !ok {
		return i18n.Localizer{}, false
	}
	return l.(i18n.Localizer), true
}

// NewResponse tags the request with an id, reusing the caller's one when
// present.
func NewResponse() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Request.Header.Get(RequestIDHeader)
		if id == "" {
			id = utils.GenRandomID()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
	}
}

// Localize renders a message id in the request's language.
func Localize(c *gin.Context, id string, data map[string]interface{}) string {
	l, ok := InjectResponseLocalizer(c)
	if !ok {
		return id
	}
	return l.GetWithData(l.Match(c.Request.Header.Get("Accept-Language")), id, data)
}

// APIError api响应失败
func APIError(c *gin.Context, err error) {
	c.Abort()

	var (
		httpStatus int
		detail     string
	)
	var cerrptr *errors.CustomizedError
	if !stderrors.As(err, &cerrptr) {
		httpStatus = http.StatusInternalServerError
		detail = Localize(c, i18n.ERROR_INTERNAL, nil)
	} else {
		httpStatus = cerrptr.GetCode()
		detail = Localize(c, cerrptr.Message(), cerrptr.Data())
	}

	c.JSON(httpStatus, ErrorBody{Detail: detail})
	printErrorLog(c, httpStatus, err)
}

func printErrorLog(c *gin.Context, status int, err error) {
	attrs := []any{
		slog.String("request_uri", c.Request.URL.Path),
		slog.String("method", c.Request.Method),
		slog.Int("code", status),
		slog.String("request_id", c.GetString(RequestIDKey)),
		slog.String("error", err.Error()),
	}
	if status >= http.StatusInternalServerError {
		slog.Error("response error", attrs...)
		return
	}
	slog.Warn("response error", attrs...)
}

func printSuccessLog(c *gin.Context, status int) {
	slog.Info("request success",
		slog.String("request_uri", c.Request.URL.Path),
		slog.String("method", c.Request.Method),
		slog.Int("code", status),
		slog.String("request_id", c.GetString(RequestIDKey)),
		slog.String("params", c.Request.URL.Query().Encode()),
	)
}

// APISuccess api响应成功
func APISuccess(c *gin.Context, response interface{}) {
	c.Abort()
	c.JSON(http.StatusOK, response)
	printSuccessLog(c, http.StatusOK)
}
