package service

import (
	"context"
	"errors"
	"time"

	"github.com/lennonhrmn/AWI-Mobile/internal/config"
	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/infra"
	"github.com/lennonhrmn/AWI-Mobile/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidCredentials = errors.New("Identifiants incorrects")
	ErrAuthNetwork        = errors.New("Erreur réseau")
)

// Role granted the admin menu and routes.
const RoleAdmin = "admin"

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo       repository.AuthRepository
	workspaces *WorkspaceStore
	cfg        *config.Config
}

// NewAuthService checks credentials against the backend and opens a console
// workspace for every successful login.
func NewAuthService(repo repository.AuthRepository, workspaces *WorkspaceStore, cfg *config.Config) AuthService {
	return &authService{repo: repo, workspaces: workspaces, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	res, err := s.repo.Login(ctx, req)
	if err != nil {
		if errors.Is(err, infra.ErrNetworkFailure) || errors.Is(err, infra.ErrInvalidEndpoint) {
			log.Warn().Err(err).Msg("login: backend unreachable")
			return nil, ErrAuthNetwork
		}
		return nil, ErrInvalidCredentials
	}
	if res.Role == "" {
		return nil, ErrInvalidCredentials
	}

	workspaceID := s.workspaces.Open()
	token, err := s.generateToken(workspaceID, req.Username, res.Role, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		s.workspaces.Close(workspaceID)
		return nil, err
	}

	log.Info().Str("username", req.Username).Str("role", res.Role).Msg("console login")
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		Role:        res.Role,
	}, nil
}

func (s *authService) generateToken(workspaceID uuid.UUID, username, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"workspace_id": workspaceID.String(),
		"username":     username,
		"role":         role,
		"exp":          time.Now().Add(duration).Unix(),
		"iat":          time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
