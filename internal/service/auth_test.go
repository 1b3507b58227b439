package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pageza/cookmate/backend/internal/models"
	"github.com/pageza/cookmate/backend/internal/testhelpers"
	"github.com/pageza/cookmate/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	db := testhelpers.SetupTestDB(t)
	return NewAuthService(db, testSecret, time.Hour).WithHashCost(bcrypt.MinCost), db
}

func TestRegister(t *testing.T) {
	svc, db := setupAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "  Cook@Example.com ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "cook@example.com", user.Email)
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.Equal(t, models.DefaultPreferences(), user.Preferences)

	var stored models.User
	require.NoError(t, db.Where("email = ?", "cook@example.com").First(&stored).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))

	_, err = svc.Register(ctx, "COOK@example.com", "other")
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = svc.Register(ctx, "", "secret")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	_, err = svc.Register(ctx, "a@b.c", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestRegisterConcurrentSameEmail(t *testing.T) {
	svc, db := setupAuthService(t)
	ctx := context.Background()

	const n = 5
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(ctx, "race@example.com", "secret")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrUserExists)
		}
	}
	assert.Equal(t, 1, succeeded)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "race@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLogin(t *testing.T) {
	svc, db := setupAuthService(t)
	ctx := context.Background()
	testhelpers.CreateTestUser(t, db, "cook@example.com")

	token, user, err := svc.Login(ctx, "COOK@example.com", testhelpers.TestPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "cook@example.com", user.Email)
	assert.NotNil(t, user.LastLogin)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "cook@example.com", claims.Email)

	_, _, err = svc.Login(ctx, "cook@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", testhelpers.TestPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestLoginReplacesPreviousSession(t *testing.T) {
	svc, db := setupAuthService(t)
	ctx := context.Background()
	testhelpers.CreateTestUser(t, db, "cook@example.com")

	first, _, err := svc.Login(ctx, "cook@example.com", testhelpers.TestPassword)
	require.NoError(t, err)
	second, _, err := svc.Login(ctx, "cook@example.com", testhelpers.TestPassword)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	_, err = svc.ValidateSession(ctx, first)
	assert.ErrorIs(t, err, ErrInvalidToken)

	user, err := svc.ValidateSession(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "cook@example.com", user.Email)
}

func TestLogout(t *testing.T) {
	svc, db := setupAuthService(t)
	ctx := context.Background()
	testhelpers.CreateTestUser(t, db, "cook@example.com")

	token, _, err := svc.Login(ctx, "cook@example.com", testhelpers.TestPassword)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))
	_, err = svc.ValidateSession(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// unknown tokens are ignored
	assert.NoError(t, svc.Logout(ctx, "not-a-token"))
	assert.ErrorIs(t, svc.Logout(ctx, ""), ErrInvalidToken)
}

func TestSessionExpires(t *testing.T) {
	svc, db := setupAuthService(t)
	ctx := context.Background()
	testhelpers.CreateTestUser(t, db, "cook@example.com")

	start := time.Now()
	svc.now = func() time.Time { return start }
	token, _, err := svc.Login(ctx, "cook@example.com", testhelpers.TestPassword)
	require.NoError(t, err)

	_, err = svc.ValidateSession(ctx, token)
	require.NoError(t, err)

	svc.now = func() time.Time { return start.Add(2 * time.Hour) }
	_, err = svc.ValidateSession(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsForgeries(t *testing.T) {
	svc, db := setupAuthService(t)
	user := testhelpers.CreateTestUser(t, db, "cook@example.com")
	now := time.Now()

	other := NewAuthService(db, "other-secret", time.Hour)
	forged, err := other.GenerateToken(user, now, now.Add(time.Hour))
	require.NoError(t, err)
	_, err = svc.ValidateToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := svc.GenerateToken(user, now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID: user.ID,
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("invalid.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetUserByEmail(t *testing.T) {
	svc, db := setupAuthService(t)
	ctx := context.Background()
	created := testhelpers.CreateTestUser(t, db, "cook@example.com")

	user, err := svc.GetUserByEmail(ctx, " Cook@Example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.GetUserByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ErrUnknownUser)
	_, err = svc.GetUserByEmail(ctx, "")
	assert.ErrorIs(t, err, ErrUnknownUser)
}
