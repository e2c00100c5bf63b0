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

type Vote struct {
	Config      *config.Config
	VoteService service.IVoteService
}

func (v *Vote) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(v.Config.Jwt.Secret))
	g := r.Group("/v1/votes")
	g.POST("", authorize, context.Wrap(v.Vote))
	g.GET("/status", authorize, context.Wrap(v.Status))
	g.POST("/status/batch", authorize, context.Wrap(v.BatchStatus))
}

// Vote 点赞/点踩, 再次提交同方向为取消
func (v *Vote) Vote(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req types.VoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	res, err := v.VoteService.Vote(c.Request.Context(), service.VoteRequest{
		ActorID:      userID,
		TargetKind:   req.TargetKind,
		TargetID:     req.TargetID,
		Action:       req.Action,
		WasUpvoted:   req.WasUpvoted,
		WasDownvoted: req.WasDownvoted,
	})
	if err != nil {
		return bizError(err)
	}

	response.Success(c, res)
	return nil
}

func (v *Vote) Status(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req types.VoteStatusReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	state, err := v.VoteService.GetVoteState(c.Request.Context(), userID, req.TargetKind, req.TargetID)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"state": state})
	return nil
}

func (v *Vote) BatchStatus(c *gin.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	var req types.BatchVoteStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	states, err := v.VoteService.BatchGetVoteStates(c.Request.Context(), userID, req.TargetKind, req.TargetIDs)
	if err != nil {
		return bizError(err)
	}

	resp := types.BatchVoteStatusResp{States: make(map[uint64]string, len(states))}
	for id, s := range states {
		resp.States[id] = string(s)
	}
	response.Success(c, resp)
	return nil
}
