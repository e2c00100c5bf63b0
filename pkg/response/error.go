package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// HTTPStatus 业务码落在 4xx/5xx 时直接作为 http 状态码
func (e *BizError) HTTPStatus() int {
	if e.Code >= 400 && e.Code < 600 {
		return e.Code
	}
	return http.StatusOK
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
