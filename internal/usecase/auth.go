package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/scenescore/scenescore/internal/domain"
	"github.com/scenescore/scenescore/internal/email"
	"github.com/scenescore/scenescore/internal/repository"
)

const (
	sessionTTL    = 7 * 24 * time.Hour
	resetTokenTTL = 15 * time.Minute
	bcryptCost    = 10
)

type AuthUsecase struct {
	users         repository.UserRepository
	email         email.Sender
	jwtKey        []byte
	sessionTTL    time.Duration
	resetTTL      time.Duration
	resetLinkBase string
	logger        *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, emailSender email.Sender, jwtKey []byte, resetLinkBase string, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:         users,
		email:         emailSender,
		jwtKey:        jwtKey,
		sessionTTL:    sessionTTL,
		resetTTL:      resetTokenTTL,
		resetLinkBase: resetLinkBase,
		logger:        logger.With("component", "auth_usecase"),
	}
}

// Login checks the password against the stored bcrypt digest and
// returns a signed session token. Unknown email and wrong password are
// indistinguishable: both fail with ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, emailAddr, password string) (string, *domain.User, error) {
	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := u.IssueToken(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// IssueToken signs a 7-day HS256 session token carrying the user
// identity.
func (u *AuthUsecase) IssueToken(userID, emailAddr string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": emailAddr,
		"iat":   now.Unix(),
		"exp":   now.Add(u.sessionTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(u.jwtKey)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}

// ChangePassword re-verifies the current password before replacing the
// digest. A mismatch leaves the stored digest untouched.
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := u.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// RequestReset generates a single-use reset token, stores its hash and
// emails the reset link. Unknown emails are ignored silently so the
// endpoint cannot be used to enumerate accounts.
func (u *AuthUsecase) RequestReset(ctx context.Context, emailAddr string) error {
	user, err := u.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			u.logger.InfoContext(ctx, "reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}

	raw := make([]byte, 32)
	if _, err = io.ReadFull(rand.Reader, raw); err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	rawToken := hex.EncodeToString(raw)
	tokenHash := fmt.Sprintf("%x", sha256.Sum256([]byte(rawToken)))

	expiresAt := time.Now().Add(u.resetTTL)
	if err = u.users.CreateResetToken(ctx, user.ID, tokenHash, expiresAt); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	link := u.resetLinkBase + "/reset?token=" + rawToken
	subject := "Reset your password"
	body := fmt.Sprintf(
		`<p>Click the link below to reset your password (expires in 15 minutes):</p><p><a href="%s">%s</a></p>`,
		link, link,
	)
	if err = u.email.Send(ctx, emailAddr, subject, body); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	return nil
}

// ResetPassword claims the raw token (single use) and replaces the
// account's digest with a fresh hash of newPassword.
func (u *AuthUsecase) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	tokenHash := fmt.Sprintf("%x", sha256.Sum256([]byte(rawToken)))

	t, err := u.users.ClaimResetToken(ctx, tokenHash)
	if err != nil {
		return domain.ErrTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := u.users.UpdatePassword(ctx, t.UserID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
