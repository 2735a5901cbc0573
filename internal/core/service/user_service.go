package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmemodas/storefront/internal/core/domain"
	"github.com/mmemodas/storefront/internal/core/ports"
)

// UserService manages administrative accounts. Passwords are stored as
// bcrypt hashes; nothing in the API authenticates against them yet.
type UserService struct {
	repo       ports.UserRepository
	logger     zerolog.Logger
	bcryptCost int
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger, bcryptCost: bcrypt.DefaultCost}
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, domain.InvalidInput("username is required")
	}
	if in.Password == "" {
		return nil, domain.InvalidInput("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{Username: username, PasswordHash: string(hash)}
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user created")
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}
