package controller

import (
	"errors"
	"fittrack_backend/internal/service"
	"fittrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model SignupRequest
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username" binding:"required"`
}

// Signup godoc
// @Summary Register a new user
// @Description Creates an account for the given email and username
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body SignupRequest true "signup payload"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Signup(req.Email, req.Password, req.Username)
	if err != nil {
		if errors.Is(err, util.ErrUserExists) {
			util.Conflict(ctx, util.ErrUserExists.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, user)
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns an access/refresh token pair
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "login credentials"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	accessToken, refreshToken, err := c.AuthService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Unauthorized(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"token":        accessToken,
		"refreshToken": refreshToken,
	})
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshToken godoc
// @Summary Refresh the access token
// @Description Exchanges a valid refresh token for a new access token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RefreshTokenRequest true "refresh token"
// @Success 200 {object} util.Response{data=object}
// @Failure 401 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /api/auth/refresh-token [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		util.Unauthorized(ctx)
		return
	}

	accessToken, err := c.AuthService.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, util.ErrInvalidToken) {
			util.Forbidden(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"accessToken": accessToken})
}

// Logout godoc
// @Summary Log out
// @Description Revokes the refresh token
// @Tags auth
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body RefreshTokenRequest true "refresh token"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	var req RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		util.Unauthorized(ctx)
		return
	}

	if err := c.AuthService.Logout(ctx.Request.Context(), req.RefreshToken); err != nil {
		if errors.Is(err, util.ErrInvalidToken) {
			util.Forbidden(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}
