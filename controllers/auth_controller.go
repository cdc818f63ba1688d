package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"go-krushivishwa/middleware"
	"go-krushivishwa/models"
	"go-krushivishwa/services"
	"go-krushivishwa/utils"
)

// AuthController 处理用户认证相关的请求
type AuthController struct {
	Auth *services.AuthService
}

// NewAuthController 创建一个新的AuthController实例
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Login 用户登录
func (c *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Auth.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeAuthError(ctx, err)
		return
	}

	utils.SuccessWithMessage(ctx, "Login successful! Redirecting to dashboard...", result)
}

// DemoLogin 演示模式登录
func (c *AuthController) DemoLogin(ctx *gin.Context) {
	result, err := c.Auth.DemoLogin(ctx.Request.Context())
	if err != nil {
		writeAuthError(ctx, err)
		return
	}

	utils.SuccessWithMessage(ctx, "Demo mode activated! Welcome to KrushiVishwa!", result)
}

// Register 用户注册（模拟）
func (c *AuthController) Register(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Auth.Register(req.Username, req.Password); err != nil {
		writeAuthError(ctx, err)
		return
	}

	utils.Created(ctx, "Account created successfully! You can now login.", gin.H{
		"username": req.Username,
	})
}

// Logout 退出登录
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.Auth.Logout(ctx.Request.Context(), ctx.GetString(middleware.ContextSessionID)); err != nil {
		_ = ctx.Error(err)
		utils.InternalServerError(ctx, "Failed to logout")
		return
	}
	utils.NoContent(ctx)
}

func writeAuthError(ctx *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.BadRequestWithData(ctx, verr.Error(), verr.Problems)
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.Unauthorized(ctx, err.Error())
	default:
		_ = ctx.Error(err)
		utils.InternalServerError(ctx, "Authentication failed")
	}
}
