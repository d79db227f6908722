package service

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/shop-admin/internal/model"
	"github.com/d60-Lab/shop-admin/internal/repository"
	"github.com/d60-Lab/shop-admin/pkg/validate"
)

// AuthService 注册 / 登录，登录签发 JWT 并在 redis 落会话
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (uint, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, sid string) error
	Profile(ctx context.Context, userID uint) (*model.User, error)
}

// SessionClaims JWT 负载：sub 为用户 ID，sid 为会话 ID
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type authService struct {
	users    repository.UserRepository
	sessions *SessionStore
	secret   []byte
	ttl      time.Duration
}

func NewAuthService(users repository.UserRepository, sessions *SessionStore, secret string, ttl time.Duration) AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &authService{users: users, sessions: sessions, secret: []byte(secret), ttl: ttl}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (uint, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, validate.Errors{"email": {"The email has already been taken."}}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	user := &model.User{Name: name, Email: email, Password: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		// 不区分账号不存在与密码错误
		return "", validate.Errors{"email": {"These credentials do not match our records."}}
	}

	sid := uuid.New().String()
	if err := s.sessions.Put(ctx, sid, user.ID); err != nil {
		return "", err
	}

	now := time.Now()
	claims := SessionClaims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *authService) Logout(ctx context.Context, sid string) error {
	return s.sessions.Delete(ctx, sid)
}

func (s *authService) Profile(ctx context.Context, userID uint) (*model.User, error) {
	return s.users.FindByID(ctx, userID)
}
