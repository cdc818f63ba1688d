package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"go-krushivishwa/models"
	"go-krushivishwa/store"
)

// DefaultPage 默认加载页面
const DefaultPage = "dashboard.html"

// DefaultLanguage 默认语言
const DefaultLanguage = "en"

var shellPages = map[string]bool{
	"dashboard.html":   true,
	"soil-health.html": true,
	"weather.html":     true,
	"market.html":      true,
	"chatbot.html":     true,
}

var languageNames = map[string]string{
	"en": "English",
	"hi": "हिंदी",
}

// LanguageName 语言显示名称
func LanguageName(code string) (string, bool) {
	name, ok := languageNames[code]
	return name, ok
}

// ShellService 保存页面切换与语言偏好
type ShellService struct {
	store  store.Store
	logger *zap.Logger
}

// NewShellService 创建页面外壳服务
func NewShellService(st store.Store, logger *zap.Logger) *ShellService {
	return &ShellService{store: st, logger: logger}
}

// State 当前状态，没有记录时返回默认值
func (s *ShellService) State(ctx context.Context, username string) (models.ShellState, error) {
	state := models.ShellState{CurrentPage: DefaultPage, Language: DefaultLanguage}

	raw, err := s.store.Get(ctx, store.ShellKey(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return state, nil
		}
		return state, err
	}

	var saved models.ShellState
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		s.logger.Warn("discarding unreadable shell state", zap.String("username", username), zap.Error(err))
		return state, nil
	}
	if shellPages[saved.CurrentPage] {
		state.CurrentPage = saved.CurrentPage
	}
	if _, ok := languageNames[saved.Language]; ok {
		state.Language = saved.Language
	}
	return state, nil
}

// Update 更新状态，空字段保持原值
func (s *ShellService) Update(ctx context.Context, username string, update models.ShellState) (models.ShellState, error) {
	if update.CurrentPage != "" && !shellPages[update.CurrentPage] {
		return models.ShellState{}, fmt.Errorf("%w: %q", ErrUnknownPage, update.CurrentPage)
	}
	if update.Language != "" {
		if _, ok := languageNames[update.Language]; !ok {
			return models.ShellState{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, update.Language)
		}
	}

	state, err := s.State(ctx, username)
	if err != nil {
		return models.ShellState{}, err
	}
	if update.CurrentPage != "" {
		state.CurrentPage = update.CurrentPage
	}
	if update.Language != "" {
		state.Language = update.Language
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return models.ShellState{}, err
	}
	if err := s.store.Set(ctx, store.ShellKey(username), string(raw), 0); err != nil {
		return models.ShellState{}, err
	}
	return state, nil
}
