package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/weekwise/weekwise/internal/model"
	"github.com/weekwise/weekwise/internal/repository"
	"github.com/weekwise/weekwise/internal/validation"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidCode  = errors.New("invalid or expired login code")
)

// AuthService implements the passwordless sign-in flow: a 6-digit code is
// mailed on every sign-in, and verifying it yields a JWT session cookie.
// New accounts are created implicitly on the first code request.
type AuthService struct {
	userRepository  repository.UserRepository
	tokenRepository repository.TokenRepository
	emailService    *EmailService
	jwtSecret       string
	isProduction    bool
	jwtExpiry       time.Duration
	loginCodeExpiry time.Duration
}

func NewAuthService(
	userRepository repository.UserRepository,
	tokenRepository repository.TokenRepository,
	emailService *EmailService,
	jwtSecret string,
	isProduction bool,
	jwtExpiry time.Duration,
	loginCodeExpiry time.Duration,
) *AuthService {
	return &AuthService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		emailService:    emailService,
		jwtSecret:       jwtSecret,
		isProduction:    isProduction,
		jwtExpiry:       jwtExpiry,
		loginCodeExpiry: loginCodeExpiry,
	}
}

// SendLoginCode handles the combined login/signup flow.
// If the user exists, a fresh code replaces any outstanding one; if not, a
// new account is created first.
func (s *AuthService) SendLoginCode(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	err := validation.ValidateEmail(email)
	if err != nil {
		return ErrInvalidEmail
	}

	user, err := s.userRepository.ByEmail(email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return fmt.Errorf("failed to look up user: %w", err)
		}

		user = &model.User{
			ID:        uuid.New().String(),
			Email:     email,
			CreatedAt: time.Now(),
		}

		err = s.userRepository.Create(user)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		slog.Info("new user created", "email", email, "user_id", user.ID)
	}

	// Only one outstanding code per user
	err = s.tokenRepository.DeleteByUserAndType(user.ID, model.TokenTypeLoginCode)
	if err != nil {
		slog.Warn("failed to delete old login codes", "error", err, "user_id", user.ID)
	}

	code, err := generateLoginCode()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	token := &model.Token{
		UserID:    user.ID,
		Type:      model.TokenTypeLoginCode,
		Token:     code,
		ExpiresAt: time.Now().Add(s.loginCodeExpiry),
	}
	err = s.tokenRepository.Create(token)
	if err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}

	err = s.emailService.SendLoginCodeEmail(user.Email, code)
	if err != nil {
		slog.Error("failed to send login code email", "error", err, "email", user.Email)
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("login code sent", "email", user.Email)
	return nil
}

// VerifyLoginCode consumes the code atomically and returns the
// authenticated user. A code can only be used once; two racing requests
// cannot both succeed.
func (s *AuthService) VerifyLoginCode(email, code string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	code = strings.TrimSpace(code)

	user, err := s.userRepository.ByEmail(email)
	if err != nil {
		return nil, ErrInvalidCode
	}

	_, err = s.tokenRepository.Consume(user.ID, model.TokenTypeLoginCode, code)
	if err != nil {
		return nil, ErrInvalidCode
	}

	// First successful sign-in doubles as email verification
	if user.EmailVerifiedAt == nil {
		now := time.Now()
		user.EmailVerifiedAt = &now
		err = s.userRepository.Update(user)
		if err != nil {
			slog.Warn("failed to verify email", "error", err, "user_id", user.ID)
		}

		err = s.emailService.SendWelcomeEmail(user.Email)
		if err != nil {
			slog.Warn("failed to send welcome email", "error", err, "email", user.Email)
		}
	}

	slog.Info("user authenticated via login code", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// SessionExpiry is when a session issued now ends. Cookie and JWT expiry
// stay in lockstep through it.
func (s *AuthService) SessionExpiry() time.Time {
	return time.Now().Add(s.jwtExpiry)
}

func (s *AuthService) GenerateJWT(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.jwtExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

func (s *AuthService) SetJWTCookie(w http.ResponseWriter, token string, expiry time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  expiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearJWTCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// generateLoginCode returns a 6-digit zero-padded code.
func generateLoginCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
