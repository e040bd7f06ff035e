package utils

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/openpanel/ai-service/pkg/errors"
	"github.com/openpanel/ai-service/pkg/i18n"
)

func GenRandomID() string {
	return RandomStr(32)
}

// RandomStr 随机字符串
func RandomStr(l int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	seed := "1234567890qwertyuiopasdfghjklzxcvbnmQWERTYUIOPASDFGHJKLZXCVBNM"
	var sb strings.Builder
	sb.Grow(l)
	for i := 0; i < l; i++ {
		sb.WriteByte(seed[r.Intn(len(seed))])
	}
	return sb.String()
}

// BindArgsWithGin decodes the request into req using the binding that fits
// the method and content type. Failures are validation errors.
func BindArgsWithGin(c *gin.Context, req interface{}) error {
	err := c.ShouldBindWith(req, binding.Default(c.Request.Method, c.ContentType()))
	if err != nil {
		return InvalidArgument(fmt.Sprintf("Gin.ShouldBindWith.%s.%s", c.Request.Method, c.Request.URL.Path), err)
	}
	return nil
}

// BindJSONWithGin always decodes the body as JSON, whatever the content type.
func BindJSONWithGin(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindWith(req, binding.JSON); err != nil {
		return InvalidArgument(fmt.Sprintf("Gin.ShouldBindJSON.%s.%s", c.Request.Method, c.Request.URL.Path), err)
	}
	return nil
}

func InvalidArgument(trace string, err error) *errors.CustomizedError {
	return errors.New(trace, i18n.ERROR_INVALIDARGUMENT, err).
		WithKind(errors.KindValidation).
		Code(http.StatusUnprocessableEntity).
		WithData(map[string]interface{}{"Reason": err.Error()})
}
