package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/infrastructure/database"
	"meal-planner/internal/pkg/common"
	"meal-planner/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.AuthConfig{
		JWTSecret:  "test-secret",
		AccessTTL:  time.Hour,
		BcryptCost: 4, // 測試用最低成本
	}
	return NewService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)

	user, token, err := svc.Register(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "secret123", user.Password)

	loggedIn, loginToken, err := svc.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, loginToken)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Register(context.Background(), "bob", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "bob", "other456")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUsernameTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Register(context.Background(), "   ", "secret123")
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))

	_, _, err = svc.Register(context.Background(), "carol", "short")
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Register(context.Background(), "dave", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "dave", "wrong-password")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService(t)

	// 帳號不存在與密碼錯誤必須回傳相同錯誤
	_, _, err := svc.Login(context.Background(), "nobody", "whatever1")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestParseTokenRoundTrip(t *testing.T) {
	svc := newTestService(t)

	user, token, err := svc.Register(context.Background(), "erin", "secret123")
	require.NoError(t, err)

	userID, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ParseToken("not-a-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestService(t)
	other := newTestService(t)
	other.config = &config.AuthConfig{
		JWTSecret:  "different-secret",
		AccessTTL:  time.Hour,
		BcryptCost: 4,
	}

	token, err := other.signToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}
