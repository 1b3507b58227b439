package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pageza/cookmate/backend/internal/models"
	"github.com/pageza/cookmate/backend/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const tokenIssuer = "cookmate"

type AuthService struct {
	db         *gorm.DB
	jwtSecret  []byte
	sessionTTL time.Duration
	hashCost   int
	now        func() time.Time
}

// Ensure AuthService implements IAuthService
var _ IAuthService = (*AuthService)(nil)

func NewAuthService(db *gorm.DB, jwtSecret string, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		db:         db,
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
		hashCost:   bcrypt.DefaultCost,
		now:        time.Now,
	}
}

// WithHashCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func (s *AuthService) WithHashCost(cost int) *AuthService {
	s.hashCost = cost
	return s
}

// NormalizeEmail makes account lookups case-insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. The unique index on email decides races
// between concurrent registrations.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Preferences:  models.DefaultPreferences(),
	}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(user)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to create user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserExists
	}

	log.Printf("[AuthService] registered user %s", user.ID)
	return user, nil
}

// Login verifies credentials and starts a new session, replacing any
// previous one. Unknown email and wrong password fail the same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, ErrMissingCredentials
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.sessionTTL)
	token, err := s.GenerateToken(&user, now, expiresAt)
	if err != nil {
		return "", nil, err
	}

	hash := hashToken(token)
	err = s.db.WithContext(ctx).Model(&user).Updates(map[string]interface{}{
		"session_token_hash": hash,
		"session_expires_at": expiresAt,
		"last_login":         now,
	}).Error
	if err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}
	user.SessionTokenHash = &hash
	user.SessionExpiresAt = &expiresAt
	user.LastLogin = &now

	return token, &user, nil
}

// Logout ends whichever session the token belongs to. Unknown tokens
// are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("session_token_hash = ?", hashToken(token)).
		Updates(map[string]interface{}{
			"session_token_hash": nil,
			"session_expires_at": nil,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// GenerateToken signs an HS256 session token for user
func (s *AuthService) GenerateToken(user *models.User, issuedAt, expiresAt time.Time) (string, error) {
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: user.ID,
		Email:  user.Email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken checks signature and expiry only. Use ValidateSession to
// also require that the session is still active.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateSession resolves a bearer token to its user. The token must be
// the one most recently issued to that user and not logged out.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", claims.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	if user.SessionTokenHash == nil || *user.SessionTokenHash != hashToken(token) {
		return nil, ErrInvalidToken
	}
	if user.SessionExpiresAt != nil && !s.now().Before(*user.SessionExpiresAt) {
		return nil, ErrInvalidToken
	}
	return &user, nil
}

// GetUserByEmail resolves the ?user= identity used by pantry and favorites
func (s *AuthService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, ErrUnknownUser
	}
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
