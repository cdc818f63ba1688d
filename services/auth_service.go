package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"go-krushivishwa/models"
	"go-krushivishwa/store"
)

// demoCredentials 演示账号明文密码，启动时做 bcrypt 哈希
var demoCredentials = []struct {
	username string
	password string
}{
	{"demo", "demo123"},
	{"farmer@krushi.com", "password123"},
	{"test@example.com", "test123"},
	{"9876543210", "mobile123"},
	{"admin", "admin123"},
}

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsPattern = regexp.MustCompile(`^\d+$`)
)

// AuthConfig 认证配置
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// HashCost 为 0 时使用 bcrypt.DefaultCost
	HashCost int
}

// Claims JWT 声明
type Claims struct {
	Demo bool `json:"demo,omitempty"`
	jwt.RegisteredClaims
}

// AuthService 静态账号登录与会话管理
type AuthService struct {
	credentials map[string]models.Credential
	secret      []byte
	ttl         time.Duration
	store       store.Store
	logger      *zap.Logger
	now         func() time.Time
}

// NewAuthService 创建认证服务
func NewAuthService(cfg AuthConfig, st store.Store, logger *zap.Logger) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if cfg.TokenTTL <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	cost := cfg.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	creds := make(map[string]models.Credential, len(demoCredentials))
	for _, c := range demoCredentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.password), cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash credential for %s: %w", c.username, err)
		}
		creds[c.username] = models.Credential{Username: c.username, PasswordHash: hash}
	}

	return &AuthService{
		credentials: creds,
		secret:      []byte(cfg.JWTSecret),
		ttl:         cfg.TokenTTL,
		store:       st,
		logger:      logger,
		now:         time.Now,
	}, nil
}

// ValidateLoginForm 校验用户名/密码格式，返回全部问题
func ValidateLoginForm(username, password string) []string {
	var problems []string

	if strings.TrimSpace(username) == "" {
		problems = append(problems, "Username/Email is required")
	}
	if password == "" {
		problems = append(problems, "Password is required")
	}
	if password != "" && len(password) < 6 {
		problems = append(problems, "Password must be at least 6 characters")
	}
	if strings.Contains(username, "@") && !emailPattern.MatchString(username) {
		problems = append(problems, "Please enter a valid email address")
	}
	if digitsPattern.MatchString(username) && len(username) != 10 {
		problems = append(problems, "Phone number must be 10 digits")
	}
	return problems
}

// DisplayName 导航栏显示名称
func DisplayName(username string) string {
	switch {
	case username == models.DemoUsername:
		return models.DemoUsername
	case username == "demo":
		return "Demo"
	case strings.Contains(username, "@"):
		local := strings.SplitN(username, "@", 2)[0]
		r := []rune(local)
		if len(r) == 0 {
			return local
		}
		return strings.ToUpper(string(r[:1])) + string(r[1:])
	case digitsPattern.MatchString(username):
		return "User"
	}
	return username
}

// Login 校验表单和账号，成功后签发令牌
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	username = strings.TrimSpace(username)
	if problems := ValidateLoginForm(username, password); len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	cred, ok := s.credentials[username]
	if !ok || bcrypt.CompareHashAndPassword(cred.PasswordHash, []byte(password)) != nil {
		s.logger.Info("login rejected", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	return s.startSession(ctx, username, false)
}

// DemoLogin 演示模式登录
func (s *AuthService) DemoLogin(ctx context.Context) (*models.LoginResult, error) {
	return s.startSession(ctx, models.DemoUsername, true)
}

// Register 模拟注册，只做表单校验
func (s *AuthService) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if problems := ValidateLoginForm(username, password); len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	s.logger.Info("registration simulated", zap.String("username", username))
	return nil
}

// Logout 删除会话
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, store.SessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// VerifyToken 校验令牌签名、有效期以及会话是否仍然存在
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*models.Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	raw, err := s.store.Get(ctx, store.SessionKey(claims.ID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

func (s *AuthService) startSession(ctx context.Context, username string, demo bool) (*models.LoginResult, error) {
	now := s.now()
	session := models.Session{
		ID:        uuid.NewString(),
		Username:  username,
		IsDemo:    demo,
		LoginTime: now,
		ExpiresAt: now.Add(s.ttl),
	}

	token, err := s.generateToken(session)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, store.SessionKey(session.ID), string(raw), s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("user logged in", zap.String("username", username), zap.Bool("demo", demo))
	return &models.LoginResult{
		Token:       token,
		Username:    username,
		DisplayName: DisplayName(username),
		IsDemo:      demo,
		LoginTime:   now,
	}, nil
}

func (s *AuthService) generateToken(session models.Session) (string, error) {
	claims := Claims{
		Demo: session.IsDemo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.Username,
			ID:        session.ID,
			IssuedAt:  jwt.NewNumericDate(session.LoginTime),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
