package user

import (
	"Quorum/pkg/context"
	"Quorum/pkg/response"
	quorum "Quorum/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler 用户模块的 HTTP 处理器
type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRouter 公开接口, 不需要登录
func (h *Handler) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/users")
	g.GET("/:id", context.Wrap(h.GetProfile))
	g.GET("/:id/reputation/events", context.Wrap(h.ReputationHistory))
}

func (h *Handler) GetProfile(c *gin.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}
	profile, err := h.svc.GetProfile(c.Request.Context(), id)
	if err != nil {
		return toBizError(err)
	}

	response.Success(c, profile)
	return nil
}

// ReputationHistory 声望流水, cursor 为上一页最后一条的 id
func (h *Handler) ReputationHistory(c *gin.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}
	var req HistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	history, err := h.svc.ReputationHistory(c.Request.Context(), id, req.Cursor, req.Limit)
	if err != nil {
		return toBizError(err)
	}

	response.Success(c, history)
	return nil
}

func userID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, "id 格式错误")
	}
	return id, nil
}

func toBizError(err error) error {
	if errors.Is(err, quorum.ErrNotFound) {
		return response.NewError(http.StatusNotFound, "用户不存在")
	}
	if errors.Is(err, quorum.ErrUnavailable) {
		return response.NewError(http.StatusServiceUnavailable, "服务暂不可用")
	}
	return err
}
