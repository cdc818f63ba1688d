package controllers

import (
	"github.com/gin-gonic/gin"

	"go-krushivishwa/models"
	"go-krushivishwa/services"
	"go-krushivishwa/utils"
)

// ChatController 农事问答
type ChatController struct {
	Bot *services.Chatbot
}

// NewChatController 创建一个新的ChatController实例
func NewChatController(bot *services.Chatbot) *ChatController {
	return &ChatController{Bot: bot}
}

// Send 发送消息
func (c *ChatController) Send(ctx *gin.Context) {
	var req models.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	reply, ok := c.Bot.Reply(req)
	if !ok {
		utils.BadRequest(ctx, "message or a known quickAction is required")
		return
	}
	utils.Success(ctx, reply)
}

// QuickActions 快捷提问
func (c *ChatController) QuickActions(ctx *gin.Context) {
	utils.Success(ctx, services.QuickActions())
}
