package models

import (
	"time"
)

// Credential 静态账号，只保存密码哈希
type Credential struct {
	Username     string
	PasswordHash []byte
}

// LoginRequest 登录/注册请求
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session 登录会话
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	IsDemo    bool      `json:"isDemo"`
	LoginTime time.Time `json:"loginTime"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LoginResult 登录成功返回
type LoginResult struct {
	Token       string    `json:"token"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	IsDemo      bool      `json:"isDemo"`
	LoginTime   time.Time `json:"loginTime"`
}

// DemoUsername 演示模式用户名
const DemoUsername = "Demo User"
