package authservice

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/GlebRadaev/trueqia/internal/domain"
	"github.com/GlebRadaev/trueqia/pkg/auth"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	minLoginLength    = 3
	minPasswordLength = 8
	tokenTTL          = 15 * time.Minute
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
type Service struct {
	userRepo      Repo
	hashService   auth.HashServiceInterface
	jwtService    auth.JWTServiceInterface
	initialTokens int64
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, initialTokens int64) *Service {
	return &Service{
		userRepo:      repo,
		hashService:   hashService,
		jwtService:    jwtService,
		initialTokens: initialTokens,
	}
}

// Register creates a user holding the initial token grant.
func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	if utf8.RuneCountInString(login) < minLoginLength {
		return nil, &domain.ValidationError{Field: "login", Reason: "must be at least 3 characters"}
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, &domain.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, domain.Internal("find user", err)
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, domain.ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, &domain.ValidationError{Field: "password", Reason: "must be at most 72 bytes"}
	}
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, domain.Internal("hash password", err)
	}
	user := &domain.User{
		Login:          login,
		PasswordHash:   hashedPassword,
		Tokens:         s.initialTokens,
		AllwainBalance: decimal.Zero,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, domain.Internal("create user", err)
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, domain.Internal("find user", err)
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
