package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"go-krushivishwa/models"
	"go-krushivishwa/services"
	"go-krushivishwa/utils"
)

// 上下文键
const (
	ContextUsername  = "username"
	ContextSessionID = "sessionID"
	ContextIsDemo    = "isDemo"
)

// TokenVerifier 校验令牌并返回会话
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*models.Session, error)
}

// AuthMiddleware 验证JWT Token的中间件
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authorization, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.Unauthorized(c, "Authorization header format must be Bearer {token}")
			c.Abort()
			return
		}

		session, err := verifier.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidToken), errors.Is(err, services.ErrSessionNotFound):
				utils.Unauthorized(c, err.Error())
			default:
				_ = c.Error(err)
				utils.InternalServerError(c, "Failed to verify session")
			}
			c.Abort()
			return
		}

		c.Set(ContextUsername, session.Username)
		c.Set(ContextSessionID, session.ID)
		c.Set(ContextIsDemo, session.IsDemo)
		c.Next()
	}
}
