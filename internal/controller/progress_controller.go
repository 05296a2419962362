package controller

import (
	"errors"
	"fittrack_backend/internal/service"
	"fittrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ProgressController maps the progress routes onto ProgressService. The
// recorder identity always comes from the verified token, never from the
// body.
type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// CreateProgress godoc
// @Summary Record progress
// @Description Records a progress entry against one of the authenticated user's goals
// @Tags progress
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.CreateProgressRequest true "progress fields"
// @Success 201 {object} util.Response{data=model.Progress}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/progress [post]
func (c *ProgressController) CreateProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.CreateProgress(user.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidGoalID), isValidationError(err):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, progress)
}

// GetProgressByGoal godoc
// @Summary List progress for a goal
// @Description Lists a goal's progress entries, most recent first
// @Tags progress
// @Produce  json
// @Security ApiKeyAuth
// @Param   goalId path int true "goal id"
// @Success 200 {object} util.Response{data=[]model.Progress}
// @Failure 400 {object} util.Response
// @Router /api/progress/{goalId} [get]
func (c *ProgressController) GetProgressByGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	goalID, ok := util.ParseUintParam(ctx.Param("goalId"))
	if !ok {
		util.BadRequest(ctx, util.ErrInvalidGoalID.Error())
		return
	}

	entries, err := c.ProgressService.GetProgressByGoal(goalID, user.UserID)
	if err != nil {
		if errors.Is(err, util.ErrInvalidGoalID) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, entries)
}

// UpdateProgress godoc
// @Summary Update a progress entry
// @Description Changes the value and/or description of one of the authenticated user's entries
// @Tags progress
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "progress id"
// @Param   body body service.UpdateProgressRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.Progress}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/progress/{id} [put]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "Invalid progress ID.")
		return
	}

	var req service.UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.UpdateProgress(id, user.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrProgressNotFound):
			util.NotFound(ctx, err.Error())
		case isValidationError(err):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, progress)
}

// DeleteProgress godoc
// @Summary Delete a progress entry
// @Description Deletes one of the authenticated user's progress entries
// @Tags progress
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "progress id"
// @Success 204 "deleted"
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/progress/{id} [delete]
func (c *ProgressController) DeleteProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.BadRequest(ctx, "Invalid progress ID.")
		return
	}

	if err := c.ProgressService.DeleteProgress(id, user.UserID); err != nil {
		if errors.Is(err, util.ErrProgressNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.NoContent(ctx)
}
