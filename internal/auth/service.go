package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-warehouse-service/internal/model"
	"github.com/fekuna/omnipos-warehouse-service/internal/notify"
	"github.com/fekuna/omnipos-warehouse-service/internal/session"
	"github.com/fekuna/omnipos-warehouse-service/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionExpired     = errors.New("session expired")
)

type userFinder interface {
	UserByEmail(email string) (*model.User, error)
}

type Config struct {
	SecretKey  []byte
	TokenTTL   time.Duration
	LoginDelay time.Duration // simulated latency before credentials are checked
}

type Claims struct {
	UserID    string     `json:"user_id"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	SessionID string     `json:"sid"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      model.User `json:"user"`
}

type Service struct {
	users    userFinder
	sessions session.Store
	notifier notify.Notifier
	cfg      Config
	logger   logger.ZapLogger
	now      func() time.Time
}

func NewService(users userFinder, sessions session.Store, notifier notify.Notifier, cfg Config, log logger.ZapLogger) *Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &Service{
		users:    users,
		sessions: sessions,
		notifier: notifier,
		cfg:      cfg,
		logger:   log,
		now:      time.Now,
	}
}

// Login checks the demo credentials after the configured delay and opens a session.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if s.cfg.LoginDelay > 0 {
		timer := time.NewTimer(s.cfg.LoginDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	u, err := s.users.UserByEmail(email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		s.notifier.Notify(ctx, notify.Alert("Login failed", "Invalid email or password."))
		return nil, ErrInvalidCredentials
	}

	res, err := s.openSession(ctx, u)
	if err != nil {
		s.logger.Error("failed to open session", zap.String("user_id", u.ID), zap.Error(err))
		s.notifier.Notify(ctx, notify.Alert("Login error", "An error occurred during login."))
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
	s.notifier.Notify(ctx, notify.Info("Login successful", fmt.Sprintf("Welcome back, %s!", u.Name)))
	return res, nil
}

func (s *Service) openSession(ctx context.Context, u *model.User) (*LoginResult, error) {
	record, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("encode session record: %w", err)
	}

	sid := uuid.New().String()
	if err := s.sessions.Set(ctx, sid, record, s.cfg.TokenTTL); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.TokenTTL)
	claims := &Claims{
		UserID:    u.ID,
		Email:     u.Email,
		Role:      u.Role,
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: *u}, nil
}

func (s *Service) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.cfg.SecretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Authenticate resolves a token to the user stored in its session. A
// record that no longer decodes is removed and treated as signed out.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (*UserContext, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}

	record, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var u model.User
	if err := json.Unmarshal(record, &u); err != nil || u.ID == "" {
		s.logger.Warn("dropping unreadable session record", zap.String("session_id", claims.SessionID))
		_ = s.sessions.Delete(ctx, claims.SessionID)
		return nil, ErrSessionExpired
	}

	return &UserContext{User: u, SessionID: claims.SessionID, Token: tokenString}, nil
}

// Logout removes the session behind the token.
func (s *Service) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.logger.Info("user logged out", zap.String("user_id", claims.UserID))
	s.notifier.Notify(ctx, notify.Info("Logged out", "You have been successfully logged out."))
	return nil
}
