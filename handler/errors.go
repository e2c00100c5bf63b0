package handler

import (
	"Quorum/pkg/context"
	"Quorum/pkg/log"
	"Quorum/pkg/response"
	"Quorum/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bizError 把 service 层错误转换为接口错误码
func bizError(err error) error {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return response.NewError(http.StatusUnauthorized, "未登录")
	case errors.Is(err, service.ErrNotFound):
		return response.NewError(http.StatusNotFound, "资源不存在")
	case errors.Is(err, service.ErrInvalidArgument):
		return response.NewError(http.StatusBadRequest, "参数错误")
	case errors.Is(err, service.ErrForbidden):
		return response.NewError(http.StatusForbidden, "无权限")
	case errors.Is(err, service.ErrAlreadyExists):
		return response.NewError(http.StatusConflict, "名称已被占用")
	case errors.Is(err, service.ErrAlreadyMember):
		return response.NewError(http.StatusConflict, "已经是成员")
	case errors.Is(err, service.ErrNotMember):
		return response.NewError(http.StatusConflict, "不是成员")
	case errors.Is(err, service.ErrLastAdmin):
		return response.NewError(http.StatusConflict, "最后一个管理员不能退出")
	case errors.Is(err, service.ErrConflict):
		return response.NewError(http.StatusConflict, "操作冲突, 请重试")
	case errors.Is(err, service.ErrUnavailable):
		log.L.Error("storage unavailable", zap.Error(err))
		return response.NewError(http.StatusServiceUnavailable, "服务暂不可用")
	}
	log.L.Error("unexpected error", zap.Error(err))
	return response.NewError(http.StatusInternalServerError, "服务内部错误")
}

func currentUser(c *gin.Context) (uint64, error) {
	uid, err := context.GetUserID(c)
	if err != nil || uid == 0 {
		return 0, response.NewError(http.StatusUnauthorized, "未登录")
	}
	return uid, nil
}

func pathID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, name+" 格式错误")
	}
	return id, nil
}
