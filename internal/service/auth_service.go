package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/01moynul/eshop-catalog-golang/internal/models"
	"github.com/01moynul/eshop-catalog-golang/internal/repository"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID int64, isAdmin bool) (string, error)
}

type AuthService struct {
	users  repository.UserRepository
	tokens TokenIssuer
	log    *zap.Logger
}

func NewAuthService(users repository.UserRepository, tokens TokenIssuer, log *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log.Named("auth")}
}

// Login checks the credentials and issues a token. Unknown emails and wrong
// passwords both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input models.LoginInput) (*models.LoginResult, error) {
	// 1. --- Find User ---
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// 2. --- Check Password ---
	// A stored hash bcrypt cannot read is a failed login, not a server error.
	pw := models.Password{Hash: user.PasswordHash}
	ok, err := pw.Matches(input.Password)
	if err != nil {
		s.log.Warn("Stored password hash is unusable", zap.Int64("user_id", user.UserID), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	// 3. --- Issue Token ---
	token, err := s.tokens.GenerateToken(user.UserID, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("User logged in", zap.Int64("user_id", user.UserID), zap.Bool("is_admin", user.IsAdmin))
	return &models.LoginResult{
		Message: "Login successful",
		Token:   token,
		User: models.LoginUser{
			ID:        user.UserID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			IsAdmin:   user.IsAdmin,
		},
	}, nil
}

// EnsureAdmin creates an admin account for email unless one already exists.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find admin: %w", err)
	}
	if existing != nil {
		if !existing.IsAdmin {
			s.log.Warn("Configured admin email belongs to a non-admin user", zap.String("email", email))
		}
		return nil
	}

	var pw models.Password
	if err := pw.Set(password); err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := &models.User{
		Email:        email,
		PasswordHash: pw.Hash,
		FirstName:    "Admin",
		IsAdmin:      true,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	s.log.Info("Admin user created", zap.Int64("user_id", admin.UserID), zap.String("email", email))
	return nil
}
