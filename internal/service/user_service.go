package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/placeshare/places-api/internal/config"
	"github.com/placeshare/places-api/internal/domain"
	"github.com/placeshare/places-api/internal/platform/logger"
	"github.com/placeshare/places-api/internal/service/auth"
	"github.com/placeshare/places-api/internal/store"
)

// AuthResult carries the outcome of a successful signup or login.
type AuthResult struct {
	UserID uuid.UUID
	Email  string
	Token  string
}

// UserService provides user account operations: registration, login, and
// the public user listing.
type UserService interface {
	// ListUsers retrieves all registered users. Password hashes are never
	// included in the returned records' JSON form.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// SignUp registers a new user and returns a fresh session token.
	// Returns ErrEmailTaken if the email is already registered.
	SignUp(ctx context.Context, name, email, password, imagePath string) (*AuthResult, error)

	// LogIn authenticates an existing user and returns a fresh session
	// token. Returns ErrInvalidCredentials for both unknown emails and
	// wrong passwords.
	LogIn(ctx context.Context, email, password string) (*AuthResult, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userStore      store.UserStore
	hasher         auth.PasswordHasher
	verifier       auth.PasswordVerifier
	tokenService   auth.TokenService
	signupLifetime time.Duration
	loginLifetime  time.Duration
	logger         *slog.Logger
}

// NewUserService creates a new UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	tokenService auth.TokenService,
	authCfg config.AuthConfig,
	logger *slog.Logger,
) (UserService, error) {
	if userStore == nil {
		return nil, &ServiceError{Service: "user", Operation: "create_service", Message: "userStore cannot be nil"}
	}
	if hasher == nil {
		return nil, &ServiceError{Service: "user", Operation: "create_service", Message: "hasher cannot be nil"}
	}
	if verifier == nil {
		return nil, &ServiceError{Service: "user", Operation: "create_service", Message: "verifier cannot be nil"}
	}
	if tokenService == nil {
		return nil, &ServiceError{Service: "user", Operation: "create_service", Message: "tokenService cannot be nil"}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore:      userStore,
		hasher:         hasher,
		verifier:       verifier,
		tokenService:   tokenService,
		signupLifetime: time.Duration(authCfg.SignupTokenLifetimeMinutes) * time.Minute,
		loginLifetime:  time.Duration(authCfg.LoginTokenLifetimeMinutes) * time.Minute,
		logger:         logger.With("component", "user_service"),
	}, nil
}

// ListUsers retrieves all registered users
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	users, err := s.userStore.List(ctx)
	if err != nil {
		log.Error("failed to list users", "error", err)
		return nil, newServiceError("user", "list_users", "failed to list users", err)
	}

	return users, nil
}

// SignUp registers a new user: validates the account data, hashes the
// password, persists the user, and issues a session token.
func (s *userServiceImpl) SignUp(ctx context.Context, name, email, password, imagePath string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(name, email, password, imagePath)
	if err != nil {
		log.Warn("invalid signup data", "error", err)
		return nil, newServiceError("user", "sign_up", "invalid user data", err)
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return nil, newServiceError("user", "sign_up", "failed to hash password", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	// A signup is a single insert; the unique email constraint does the
	// conflict detection.
	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("signup rejected: email already registered", "email", user.Email)
			return nil, ErrEmailTaken
		}
		log.Error("failed to create user", "error", err)
		return nil, newServiceError("user", "sign_up", "failed to create user", err)
	}

	token, err := s.tokenService.GenerateToken(ctx, user.ID, user.Email, s.signupLifetime)
	if err != nil {
		// The account exists at this point; the client can recover by
		// logging in.
		log.Error("failed to issue token after signup",
			"error", err,
			"user_id", user.ID)
		return nil, newServiceError("user", "sign_up", "failed to issue token", err)
	}

	log.Info("user signed up", "user_id", user.ID)
	return &AuthResult{
		UserID: user.ID,
		Email:  user.Email,
		Token:  token,
	}, nil
}

// LogIn authenticates a user by email and password. Unknown emails and
// wrong passwords both yield ErrInvalidCredentials so callers cannot
// probe which emails are registered.
func (s *userServiceImpl) LogIn(ctx context.Context, email, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login failed: unknown email")
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user for login", "error", err)
		return nil, newServiceError("user", "log_in", "failed to look up user", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login failed: password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateToken(ctx, user.ID, user.Email, s.loginLifetime)
	if err != nil {
		log.Error("failed to issue token after login",
			"error", err,
			"user_id", user.ID)
		return nil, newServiceError("user", "log_in", "failed to issue token", err)
	}

	log.Info("user logged in", "user_id", user.ID)
	return &AuthResult{
		UserID: user.ID,
		Email:  user.Email,
		Token:  token,
	}, nil
}
