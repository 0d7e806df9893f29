// Package impl contains the implementation of the application's business
// logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"matchday/internal/domain/entity"
	domainerrors "matchday/internal/domain/errors"
	"matchday/internal/domain/repository"
	"matchday/internal/domain/service"
	"matchday/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	verifier    service.CredentialVerifier
	tokens      service.TokenService
	validate    *validator.Validate
	logger      *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Verifier    service.CredentialVerifier
	Tokens      service.TokenService
	Logger      *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		verifier:    params.Verifier,
		tokens:      params.Tokens,
		validate:    validator.New(),
		logger:      params.Logger,
	}
}

// Register adds a new user to the registry and opens a session for them.
// The registry and session keys are written independently; a crash between
// the two writes leaves a registered-but-not-logged-in user, which the
// next login repairs.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Session, error) {
	if err := srv.validate.Struct(input); err != nil {
		srv.logger.Warn("Registration input failed validation", slog.Any("error", err))

		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid registration input")
	}

	users, err := srv.userRepo.Load(ctx)
	if err != nil {
		srv.logger.Error("Failed to load user registry", slog.Any("error", err))

		return nil, domainerrors.ErrStorageFailure.WrapMessage("failed to load user registry")
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, input.Email) {
			srv.logger.Warn("Registration rejected, email taken", slog.String("email", input.Email))

			return nil, domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
		}
	}

	user := entity.User{
		ID:        uuid.NewString(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	}

	if err := srv.userRepo.Save(ctx, append(users, user)); err != nil {
		srv.logger.Error("Failed to persist user registry", slog.Any("error", err))

		return nil, domainerrors.ErrStorageFailure.WrapMessage("failed to persist user registry")
	}

	session, err := srv.openSession(ctx, &user)
	if err != nil {
		return nil, err
	}

	srv.logger.Info("User registered", slog.String("userID", user.ID))

	return session, nil
}

// Login opens a session for the matching registry user. The email is
// compared case-insensitively, the password byte-for-byte.
func (srv *identityService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Session, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid login input")
	}

	users, err := srv.userRepo.Load(ctx)
	if err != nil {
		srv.logger.Error("Failed to load user registry", slog.Any("error", err))

		return nil, domainerrors.ErrStorageFailure.WrapMessage("failed to load user registry")
	}

	var match *entity.User
	for i := range users {
		if strings.EqualFold(users[i].Email, input.Email) && srv.verifier.Verify(input.Password, users[i].Password) {
			match = &users[i]

			break
		}
	}

	if match == nil {
		srv.logger.Warn("Login rejected", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("no matching credentials")
	}

	session, err := srv.openSession(ctx, match)
	if err != nil {
		return nil, err
	}

	srv.logger.Info("User logged in", slog.String("userID", match.ID))

	return session, nil
}

// openSession issues a token, persists the session projection and returns it.
func (srv *identityService) openSession(ctx context.Context, user *entity.User) (*entity.Session, error) {
	token, err := srv.tokens.Issue(user.ID)
	if err != nil {
		srv.logger.Error("Failed to issue session token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to issue session token")
	}

	session := entity.NewSession(user, token)
	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		srv.logger.Error("Failed to persist session", slog.Any("error", err))

		return nil, domainerrors.ErrStorageFailure.WrapMessage("failed to persist session")
	}

	return session, nil
}

// Logout clears the persisted session. Best-effort: a storage failure is
// logged and the caller-visible flow still succeeds.
func (srv *identityService) Logout(ctx context.Context) {
	if err := srv.sessionRepo.Clear(ctx); err != nil {
		srv.logger.Warn("Failed to clear persisted session", slog.Any("error", err))

		return
	}

	srv.logger.Info("User logged out")
}

// RestoreSession reads the persisted session. Absent or unreadable state
// restores to anonymous.
func (srv *identityService) RestoreSession(ctx context.Context) *entity.Session {
	session, err := srv.sessionRepo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrSessionNotFound) {
			srv.logger.Warn("Failed to restore session", slog.Any("error", err))
		}

		return nil
	}

	return session
}
