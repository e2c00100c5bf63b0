package handler

import (
	"Quorum/config"
	"Quorum/middleware"
	"Quorum/pkg/context"
	"Quorum/pkg/response"
	"Quorum/service"
	"Quorum/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Notification struct {
	Config              *config.Config
	NotificationService service.INotificationService
}

func (n *Notification) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(n.Config.Jwt.Secret))
	g := r.Group("/v1/notifications", authorize)
	g.GET("", context.Wrap(n.List))
	g.GET("/unread-count", context.Wrap(n.UnreadCount))
	g.PATCH("/:id/read", context.Wrap(n.MarkRead))
	g.POST("/read-all", context.Wrap(n.MarkAllRead))
}

// List 通知列表, 新的在前
func (n *Notification) List(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req types.ListNotificationReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	list, err := n.NotificationService.List(c.Request.Context(), userID, req.Page, req.PageSize)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, list)
	return nil
}

func (n *Notification) UnreadCount(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	count, err := n.NotificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"count": count})
	return nil
}

// MarkRead 不是自己的通知时静默成功
func (n *Notification) MarkRead(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := n.NotificationService.MarkRead(c.Request.Context(), id, userID); err != nil {
		return bizError(err)
	}

	response.Success(c, nil)
	return nil
}

func (n *Notification) MarkAllRead(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := n.NotificationService.MarkAllRead(c.Request.Context(), userID); err != nil {
		return bizError(err)
	}

	response.Success(c, nil)
	return nil
}
