package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"car-marketplace-api/auth"
	"car-marketplace-api/config"
	"car-marketplace-api/models"
	"car-marketplace-api/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testDeps struct {
	db       *gorm.DB
	users    *UserService
	cars     *CarService
	tokens   *auth.TokenService
	userRepo *repository.GormUserRepository
	carRepo  *repository.GormCarRepository
}

func setupServices(t *testing.T) *testDeps {
	t.Helper()
	db, err := config.OpenDB(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "services.db"),
	}, nil)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	carRepo := repository.NewCarRepository(db)
	tokens := auth.NewTokenService(config.AuthConfig{Secret: "test-secret", TokenTTL: time.Hour})

	return &testDeps{
		db:       db,
		users:    NewUserService(userRepo, auth.NewBcryptHasher(bcrypt.MinCost), tokens),
		cars:     NewCarService(carRepo, userRepo),
		tokens:   tokens,
		userRepo: userRepo,
		carRepo:  carRepo,
	}
}

func (d *testDeps) register(t *testing.T, username string) *models.User {
	t.Helper()
	u, err := d.users.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    username + "@x.com",
		Password: "password-" + username,
	})
	require.NoError(t, err)
	return u
}

func (d *testDeps) admin(t *testing.T, username string) *models.User {
	t.Helper()
	in := RegisterInput{Username: username, Email: username + "@x.com", Password: "password-" + username}
	created, err := d.users.EnsureAdmin(context.Background(), in)
	require.NoError(t, err)
	require.True(t, created)
	u, err := d.userRepo.FindByEmail(context.Background(), in.Email)
	require.NoError(t, err)
	return u
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
