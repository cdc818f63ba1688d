package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"go-krushivishwa/middleware"
	"go-krushivishwa/models"
	"go-krushivishwa/services"
	"go-krushivishwa/utils"
)

// ShellController 页面切换与语言偏好
type ShellController struct {
	Shell *services.ShellService
}

// NewShellController 创建一个新的ShellController实例
func NewShellController(shell *services.ShellService) *ShellController {
	return &ShellController{Shell: shell}
}

// GetState 获取页面状态
func (c *ShellController) GetState(ctx *gin.Context) {
	state, err := c.Shell.State(ctx.Request.Context(), ctx.GetString(middleware.ContextUsername))
	if err != nil {
		_ = ctx.Error(err)
		utils.InternalServerError(ctx, "Failed to load page state")
		return
	}
	utils.Success(ctx, state)
}

// UpdateState 更新当前页面或语言
func (c *ShellController) UpdateState(ctx *gin.Context) {
	var req models.ShellState
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	state, err := c.Shell.Update(ctx.Request.Context(), ctx.GetString(middleware.ContextUsername), req)
	if err != nil {
		if errors.Is(err, services.ErrUnknownPage) || errors.Is(err, services.ErrUnknownLanguage) {
			utils.BadRequest(ctx, err.Error())
			return
		}
		_ = ctx.Error(err)
		utils.InternalServerError(ctx, "Failed to save page state")
		return
	}

	message := "success"
	if req.Language != "" {
		name, _ := services.LanguageName(state.Language)
		message = "Language changed to " + name
	}
	utils.SuccessWithMessage(ctx, message, state)
}
