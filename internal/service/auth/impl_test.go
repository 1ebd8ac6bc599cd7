package auth

import (
	"testing"

	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/config"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/model/entity"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/repository/postgres"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/repository/util"
	"github.com/proTJS01/CS2340-Atlanta-Food-Finder/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}))

	cfg := &config.AppConfig{JWTSecret: "test-secret"}
	return New(cfg, &util.RepoWrapper{UserRepo: &postgres.RepoDatabase{DB: db}})
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	svc := newTestAuthService(t)

	registered, err := svc.Register(entity.RegisterRequest{
		Username: "foodie",
		Email:    "foodie@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "foodie", registered.Username)
	assert.NotEmpty(t, registered.Token)

	registeredID, err := svc.ParseToken(registered.Token)
	require.NoError(t, err)

	loggedIn, err := svc.Login(entity.LoginRequest{Username: "foodie", Password: "hunter2hunter2"})
	require.NoError(t, err)

	loggedInID, err := svc.ParseToken(loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, registeredID, loggedInID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Register(entity.RegisterRequest{Username: "foodie", Email: "a@b.c", Password: "hunter2hunter2"})
	require.NoError(t, err)

	_, err = svc.Register(entity.RegisterRequest{Username: "foodie", Email: "x@y.z", Password: "different-pass"})
	assert.ErrorIs(t, err, service.ErrUsernameTaken)
}

func TestRegisterDoesNotStorePlaintextPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Register(entity.RegisterRequest{Username: "foodie", Email: "a@b.c", Password: "hunter2hunter2"})
	require.NoError(t, err)

	user, err := svc.userRepo.FindByUsername("foodie")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Register(entity.RegisterRequest{Username: "foodie", Email: "a@b.c", Password: "hunter2hunter2"})
	require.NoError(t, err)

	_, err = svc.Login(entity.LoginRequest{Username: "foodie", Password: "wrong"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(entity.LoginRequest{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestParseTokenGarbage(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	svc := newTestAuthService(t)
	other := newTestAuthService(t)
	other.jwtSecret = []byte("different-secret")

	registered, err := svc.Register(entity.RegisterRequest{Username: "foodie", Email: "a@b.c", Password: "hunter2hunter2"})
	require.NoError(t, err)

	_, err = other.ParseToken(registered.Token)
	assert.Error(t, err)
}
