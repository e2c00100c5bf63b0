package handler

import (
	"Quorum/config"
	"Quorum/middleware"
	"Quorum/models"
	"Quorum/pkg/context"
	"Quorum/pkg/response"
	"Quorum/service"
	"Quorum/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Question struct {
	Config          *config.Config
	QuestionService service.IQuestionService
}

func (q *Question) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(q.Config.Jwt.Secret))
	r.POST("/v1/questions", authorize, context.Wrap(q.Create))
	r.POST("/v1/forums/:id/questions", authorize, context.Wrap(q.AskInForum))
}

func (q *Question) Create(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req types.CreateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	question, err := q.QuestionService.CreateQuestion(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, questionItem(question))
	return nil
}

// AskInForum 论坛内提问, 仅成员可用
func (q *Question) AskInForum(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	forumID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req types.CreateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	question, err := q.QuestionService.AskInForum(c.Request.Context(), userID, forumID, req.Title, req.Content)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, questionItem(question))
	return nil
}

func questionItem(q *models.Question) types.QuestionItem {
	return types.QuestionItem{
		ID:        q.ID,
		Title:     q.Title,
		AuthorID:  q.AuthorID,
		ForumID:   q.ForumID,
		CreatedAt: q.CreatedAt,
	}
}
