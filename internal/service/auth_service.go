package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/scribeset/internal/auth"
	"github.com/lshigami/scribeset/internal/dto"
	"github.com/lshigami/scribeset/internal/model"
	"github.com/lshigami/scribeset/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// EnsureModerator creates the account if no moderator has that username yet.
	EnsureModerator(ctx context.Context, username, password string) error
}

type authService struct {
	moderatorRepo repository.ModeratorRepository
	tokens        *auth.TokenManager
}

func NewAuthService(moderatorRepo repository.ModeratorRepository, tokens *auth.TokenManager) AuthService {
	return &authService{moderatorRepo: moderatorRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	moderator, err := s.moderatorRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("error loading moderator: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(moderator.PasswordHash), []byte(req.Password)) != nil {
		log.Warn().Str("username", req.Username).Msg("Login: wrong password")
		return nil, ErrUnauthorized
	}

	token, expiresAt, err := s.tokens.Issue(moderator.ID, moderator.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *authService) EnsureModerator(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required: %w", ErrValidation)
	}
	_, err := s.moderatorRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("error loading moderator: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.moderatorRepo.Create(ctx, &model.Moderator{Username: username, PasswordHash: string(hash)}); err != nil {
		return fmt.Errorf("database error creating moderator: %w", err)
	}
	log.Info().Str("username", username).Msg("Moderator account created")
	return nil
}
