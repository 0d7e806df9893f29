package impl

import (
	"context"
	"testing"

	domainerrors "matchday/internal/domain/errors"
	"matchday/internal/infra/kv"
	"matchday/internal/infra/persistence/kvjson"
	"matchday/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@x.com",
		Password:  "secret1",
	}
}

func TestIdentityService_RegisterOpensSession(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	service := newIdentityService(t, store)

	session, err := service.Register(ctx, registerInput())
	require.NoError(t, err)
	assert.Equal(t, "Ann", session.FirstName)
	assert.Equal(t, "Lee", session.LastName)
	assert.Equal(t, "ann@x.com", session.Email)
	assert.NotEmpty(t, session.UserID)
	assert.NotEmpty(t, session.Token)

	// The registry holds the record and the session is persisted.
	users, err := kvjson.NewUserRepository(store).Load(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, session.UserID, users[0].ID)

	persisted, err := kvjson.NewSessionRepository(store).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, persisted.UserID)
}

func TestIdentityService_RegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	// Scenario: a second registration with the same email in different
	// case fails and leaves the registry untouched.
	ctx := context.Background()
	store := kv.NewMemoryStore()
	service := newIdentityService(t, store)

	_, err := service.Register(ctx, registerInput())
	require.NoError(t, err)

	_, err = service.Register(ctx, &usecase.RegisterInput{
		FirstName: "X",
		LastName:  "Y",
		Email:     "ANN@X.COM",
		Password:  "other12",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)

	users, err := kvjson.NewUserRepository(store).Load(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestIdentityService_RegisterValidation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{"missing first name", usecase.RegisterInput{LastName: "Lee", Email: "a@x.com", Password: "secret1"}},
		{"missing last name", usecase.RegisterInput{FirstName: "Ann", Email: "a@x.com", Password: "secret1"}},
		{"missing email", usecase.RegisterInput{FirstName: "Ann", LastName: "Lee", Password: "secret1"}},
		{"malformed email", usecase.RegisterInput{FirstName: "Ann", LastName: "Lee", Email: "not-an-email", Password: "secret1"}},
		{"short password", usecase.RegisterInput{FirstName: "Ann", LastName: "Lee", Email: "a@x.com", Password: "12345"}},
	}

	service := newIdentityService(t, kv.NewMemoryStore())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), &tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestIdentityService_LoginSuccess(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	service := newIdentityService(t, store)

	registered, err := service.Register(ctx, registerInput())
	require.NoError(t, err)
	service.Logout(ctx)

	session, err := service.Login(ctx, &usecase.LoginInput{Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, session.UserID)
	assert.Equal(t, "Ann", session.FirstName)
}

func TestIdentityService_LoginEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	service := newIdentityService(t, kv.NewMemoryStore())

	_, err := service.Register(ctx, registerInput())
	require.NoError(t, err)

	session, err := service.Login(ctx, &usecase.LoginInput{Email: "Ann@X.Com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", session.Email)
}

func TestIdentityService_LoginRejectsNearMissPassword(t *testing.T) {
	ctx := context.Background()
	service := newIdentityService(t, kv.NewMemoryStore())

	_, err := service.Register(ctx, registerInput())
	require.NoError(t, err)

	tests := []string{"wrong1", "secret", "secret1 ", "Secret1"}
	for _, password := range tests {
		_, err := service.Login(ctx, &usecase.LoginInput{Email: "ann@x.com", Password: password})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials, "password %q", password)
	}
}

func TestIdentityService_LoginUnknownEmail(t *testing.T) {
	service := newIdentityService(t, kv.NewMemoryStore())

	_, err := service.Login(context.Background(), &usecase.LoginInput{Email: "nobody@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestIdentityService_LogoutClearsSessionForFreshStore(t *testing.T) {
	// After logout, a fresh service over the same storage restores to
	// anonymous even though the registry still holds the user.
	ctx := context.Background()
	store := kv.NewMemoryStore()
	service := newIdentityService(t, store)

	_, err := service.Register(ctx, registerInput())
	require.NoError(t, err)
	service.Logout(ctx)

	fresh := newIdentityService(t, store)
	assert.Nil(t, fresh.RestoreSession(ctx))

	users, err := kvjson.NewUserRepository(store).Load(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestIdentityService_RestoreSessionAcrossInstances(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	service := newIdentityService(t, store)

	session, err := service.Register(ctx, registerInput())
	require.NoError(t, err)

	fresh := newIdentityService(t, store)
	restored := fresh.RestoreSession(ctx)
	require.NotNil(t, restored)
	assert.Equal(t, session.UserID, restored.UserID)

	// Restore is read-only and idempotent.
	assert.Equal(t, restored, fresh.RestoreSession(ctx))
}

func TestIdentityService_StorageFailures(t *testing.T) {
	ctx := context.Background()
	service := newIdentityService(t, failingStore{})

	_, err := service.Register(ctx, registerInput())
	assert.ErrorIs(t, err, domainerrors.ErrStorageFailure)

	_, err = service.Login(ctx, &usecase.LoginInput{Email: "ann@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrStorageFailure)

	// Logout and restore swallow storage errors.
	service.Logout(ctx)
	assert.Nil(t, service.RestoreSession(ctx))
}
