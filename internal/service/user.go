package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/p-aks/EventManagement/internal/auth"
	"github.com/p-aks/EventManagement/internal/domain"
	"github.com/p-aks/EventManagement/internal/service/ports"
)

const minPasswordLen = 8

type UserService struct {
	repo   ports.UserRepo
	tokens *auth.TokenManager
}

func NewUserService(repo ports.UserRepo, tokens *auth.TokenManager) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
	}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}
	if input.Role != domain.RoleOrganizer && input.Role != domain.RoleAttendee {
		return nil, fmt.Errorf("%w: role must be organizer or attendee", domain.ErrValidation)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Email:          strings.ToLower(input.Email),
		PasswordHash:   hash,
		Role:           input.Role,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues the opaque bearer credential that
// downstream request handling trusts. Lookup failures and password
// mismatches collapse into the same error so callers cannot probe emails.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}
