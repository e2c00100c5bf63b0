package context

import (
	"Quorum/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const CtxUserID = "user_id"

var ErrNoUser = errors.New("user_id 不存在")

type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(be.HTTPStatus(), response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

// GetUserID 读取鉴权中间件写入的用户ID, 未登录返回 0
func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, ErrNoUser
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

// SetUserID 写入当前请求的用户ID
func SetUserID(c *gin.Context, uid uint64) {
	c.Set(CtxUserID, uid)
}
