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

type Forum struct {
	Config       *config.Config
	ForumService service.IForumService
}

func (f *Forum) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(f.Config.Jwt.Secret))
	g := r.Group("/v1/forums")
	g.POST("", authorize, context.Wrap(f.Create))
	g.POST("/:id/join", authorize, context.Wrap(f.Join))
	g.POST("/:id/leave", authorize, context.Wrap(f.Leave))
}

// Create 创建论坛, 创建者成为管理员
func (f *Forum) Create(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req types.CreateForumReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	forum, err := f.ForumService.CreateForum(c.Request.Context(), userID, req.Name, req.Slug, req.Description, req.Picture)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, types.ForumItem{
		ID:          forum.ID,
		Name:        forum.Name,
		Slug:        forum.Slug,
		Description: forum.Description,
		Picture:     forum.Picture,
		CreatedAt:   forum.CreatedAt,
	})
	return nil
}

func (f *Forum) Join(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	forumID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := f.ForumService.JoinForum(c.Request.Context(), userID, forumID); err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"joined": true})
	return nil
}

func (f *Forum) Leave(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	forumID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := f.ForumService.LeaveForum(c.Request.Context(), userID, forumID); err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"joined": false})
	return nil
}
