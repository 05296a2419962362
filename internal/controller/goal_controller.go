package controller

import (
	"errors"
	"fittrack_backend/internal/service"
	"fittrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// GoalController maps the goal routes onto GoalService. Every handler
// re-derives the acting user from the verified token; client-supplied user
// ids are never trusted.
type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

// CreateGoal godoc
// @Summary Create a goal
// @Description Creates a goal owned by the authenticated user
// @Tags goals
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.CreateGoalRequest true "goal fields"
// @Success 201 {object} util.Response{data=model.Goal}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/goals [post]
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.CreateGoal(user.UserID, req)
	if err != nil {
		if isValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, goal)
}

// GetGoals godoc
// @Summary List goals
// @Description Lists the authenticated user's goals, oldest first
// @Tags goals
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Goal}
// @Failure 500 {object} util.Response
// @Router /api/goals [get]
func (c *GoalController) GetGoals(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	goals, err := c.GoalService.GetUserGoals(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, goals)
}

// GetGoal godoc
// @Summary Get a goal
// @Description Fetches one of the authenticated user's goals by id
// @Tags goals
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "goal id"
// @Success 200 {object} util.Response{data=model.Goal}
// @Failure 404 {object} util.Response
// @Router /api/goals/{id} [get]
func (c *GoalController) GetGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx, util.ErrGoalNotFound.Error())
		return
	}

	goal, err := c.GoalService.GetGoalByID(id, user.UserID)
	if err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, goal)
}

// UpdateGoal godoc
// @Summary Update a goal
// @Description Applies a partial update to one of the authenticated user's goals
// @Tags goals
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "goal id"
// @Param   body body service.UpdateGoalRequest true "fields to change"
// @Success 200 {object} util.Response{data=model.Goal}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/goals/{id} [put]
func (c *GoalController) UpdateGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx, util.ErrGoalNotFound.Error())
		return
	}

	var req service.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.UpdateGoal(id, user.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrGoalNotFound):
			util.NotFound(ctx, err.Error())
		case isValidationError(err):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, goal)
}

// DeleteGoal godoc
// @Summary Delete a goal
// @Description Deletes one of the authenticated user's goals and its progress entries
// @Tags goals
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "goal id"
// @Success 204 "deleted"
// @Failure 404 {object} util.Response
// @Router /api/goals/{id} [delete]
func (c *GoalController) DeleteGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx, util.ErrGoalNotFound.Error())
		return
	}

	if err := c.GoalService.DeleteGoal(id, user.UserID); err != nil {
		if errors.Is(err, util.ErrGoalNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.NoContent(ctx)
}
