package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"food_ordering/internal/models"
	"food_ordering/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Register(username, password string) (*models.User, error)
	Login(username, password string) (string, error)
	Authenticate(token string) (string, error)
	Logout(token string) error
}

type userService struct {
	userRepo  repository.UserRepository
	sessions  SessionStore
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewUserService(userRepo repository.UserRepository, sessions SessionStore, jwtSecret string, tokenTTL time.Duration) UserService {
	return &userService{
		userRepo:  userRepo,
		sessions:  sessions,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func (s *userService) Register(username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, validationErrorf("username must not be empty")
	}
	if password == "" {
		return nil, validationErrorf("password must not be empty")
	}

	_, err := s.userRepo.GetByUsername(username)
	if err == nil {
		return nil, validationErrorf("username %s is already taken", username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Username: username, Password: string(hash)}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and returns a signed bearer token. The
// session behind the token lives in the session store so it can be revoked.
func (s *userService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	tokenID := uuid.NewString()
	claims := jwt.MapClaims{
		"username": user.Username,
		"jti":      tokenID,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	if err := s.sessions.Set(tokenID, &Session{Username: user.Username, IssuedAt: now}, s.tokenTTL); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return signed, nil
}

// Authenticate checks the token signature and that its session is still live,
// and returns the username it was issued to.
func (s *userService) Authenticate(token string) (string, error) {
	username, tokenID, err := s.parseToken(token)
	if err != nil {
		return "", err
	}
	if _, err := s.sessions.Get(tokenID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return "", ErrInvalidToken
		}
		return "", fmt.Errorf("failed to look up session: %w", err)
	}
	return username, nil
}

// Logout revokes the token's session. Revoking an already-dead session is not
// an error.
func (s *userService) Logout(token string) error {
	_, tokenID, err := s.parseToken(token)
	if err != nil {
		return err
	}
	if err := s.sessions.Delete(tokenID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *userService) parseToken(token string) (username, tokenID string, err error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return "", "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}
	username, _ = claims["username"].(string)
	tokenID, _ = claims["jti"].(string)
	if username == "" || tokenID == "" {
		return "", "", ErrInvalidToken
	}
	return username, tokenID, nil
}
