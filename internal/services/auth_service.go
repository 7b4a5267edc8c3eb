package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dwarak18/GPT-llama3.2/internal/models"
)

type AuthService interface {
	Signup(ctx context.Context, username, email, password, phone string) (uuid.UUID, error)
	Login(ctx context.Context, usernameOrEmail, password string) (*models.User, error)
}

type authService struct {
	store UserStore
}

func NewAuthService(store UserStore) AuthService {
	return &authService{store: store}
}

// Signup хеширует пароль и создаёт пользователя, возвращает его ID
func (s *authService) Signup(ctx context.Context, username, email, password, phone string) (uuid.UUID, error) {
	if username == "" || email == "" || password == "" {
		return uuid.Nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
		CreatedAt:    time.Now(),
	}

	if err := s.store.SaveUser(user); err != nil {
		log.Printf("signup rejected for %q: %v", username, err)
		return uuid.Nil, ErrUserConflict
	}

	return user.ID, nil
}

// Login находит пользователя по username или email и проверяет пароль.
// Несуществующий пользователь и неверный пароль дают одну и ту же ошибку.
func (s *authService) Login(ctx context.Context, usernameOrEmail, password string) (*models.User, error) {
	if usernameOrEmail == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.store.FindUserByLogin(usernameOrEmail)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
