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

type Answer struct {
	Config        *config.Config
	AnswerService service.IAnswerService
}

func (a *Answer) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret))
	g := r.Group("/v1/answers")
	g.POST("", authorize, context.Wrap(a.Create))
}

// Create 回答问题, 问题作者会收到通知
func (a *Answer) Create(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req types.CreateAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	ans, err := a.AnswerService.CreateAnswer(c.Request.Context(), userID, req.QuestionID, req.Content)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, types.AnswerItem{
		ID:         ans.ID,
		QuestionID: ans.QuestionID,
		AuthorID:   ans.AuthorID,
		CreatedAt:  ans.CreatedAt,
	})
	return nil
}
