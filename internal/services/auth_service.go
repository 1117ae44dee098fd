package services

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"time"

	"github.com/example/otpauth/internal/models"
	"github.com/example/otpauth/internal/store"
	"github.com/example/otpauth/internal/utils"
)

// AuthService orchestrates registration, verification, login, and
// password-reset flows over the user store and the OTP mailer.
type AuthService struct {
	users    store.UserStore
	mailer   OtpSender
	secret   string
	tokenTTL time.Duration
}

// NewAuthService constructs an AuthService.
func NewAuthService(users store.UserStore, mailer OtpSender, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		mailer:   mailer,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register creates an unverified user, stores a fresh OTP on the record,
// and dispatches the OTP email.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	var msgs []string
	if len(name) < 3 {
		msgs = append(msgs, "name must be at least 3 characters")
	}
	if !validEmail(email) {
		msgs = append(msgs, "email must be a valid email address")
	}
	if len(password) < 6 {
		msgs = append(msgs, "password must be at least 6 characters")
	}
	if len(msgs) > 0 {
		return "", &ValidationError{Messages: msgs}
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", &ConflictError{Msg: "User already exists"}
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", err
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return "", err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Verified:     false,
		OTP:          &otp,
	}

	if err := s.users.Save(ctx, user); err != nil {
		return "", err
	}

	s.notifyOtp(user, otp)

	return "Registration successful. Please check your email for the OTP.", nil
}

// VerifyOtp marks the user verified when the supplied code matches the
// outstanding one. The code is single-use and cleared on success.
func (s *AuthService) VerifyOtp(ctx context.Context, email, otp string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", &AuthError{Msg: "Invalid email or OTP"}
		}
		return "", err
	}

	if user.OTP == nil || *user.OTP != otp {
		return "", &AuthError{Msg: "Invalid email or OTP"}
	}

	user.Verified = true
	user.OTP = nil
	if err := s.users.Save(ctx, user); err != nil {
		return "", err
	}

	return "Email verified successfully", nil
}

// Login authenticates a verified user and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var msgs []string
	if !validEmail(email) {
		msgs = append(msgs, "email must be a valid email address")
	}
	if len(password) < 6 {
		msgs = append(msgs, "password must be at least 6 characters")
	}
	if len(msgs) > 0 {
		return "", &ValidationError{Messages: msgs}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", &AuthError{Msg: "Invalid credentials"}
		}
		return "", err
	}

	// Verification state is checked before the password on purpose.
	if !user.Verified {
		return "", &AuthError{Msg: "Please verify your email first"}
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		return "", &AuthError{Msg: "Invalid credentials"}
	}

	return utils.GenerateToken(s.secret, user.ID, s.tokenTTL)
}

// RequestPasswordReset issues a fresh OTP, overwriting any outstanding
// one, and dispatches it by email.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if !validEmail(email) {
		return "", &ValidationError{Messages: []string{"email must be a valid email address"}}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", &NotFoundError{Msg: "User not found"}
		}
		return "", err
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return "", err
	}

	user.OTP = &otp
	if err := s.users.Save(ctx, user); err != nil {
		return "", err
	}

	s.notifyOtp(user, otp)

	return "OTP sent to your email", nil
}

// ResetPassword replaces the password hash after OTP verification and
// clears the code.
func (s *AuthService) ResetPassword(ctx context.Context, email, otp, newPassword string) (string, error) {
	var msgs []string
	if !validEmail(email) {
		msgs = append(msgs, "email must be a valid email address")
	}
	if len(otp) != 6 {
		msgs = append(msgs, "otp must be 6 characters")
	}
	if len(newPassword) < 6 {
		msgs = append(msgs, "newPassword must be at least 6 characters")
	}
	if len(msgs) > 0 {
		return "", &ValidationError{Messages: msgs}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", &AuthError{Msg: "Invalid email or OTP"}
		}
		return "", err
	}

	if user.OTP == nil || *user.OTP != otp {
		return "", &AuthError{Msg: "Invalid email or OTP"}
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return "", err
	}

	user.PasswordHash = hash
	user.OTP = nil
	if err := s.users.Save(ctx, user); err != nil {
		return "", err
	}

	return "Password reset successfully", nil
}

// notifyOtp dispatches the OTP email without awaiting the result; delivery
// failures are logged and never fail the parent operation.
func (s *AuthService) notifyOtp(user *models.User, otp string) {
	u := *user
	go func() {
		if err := s.mailer.SendOtpEmail(&u, otp); err != nil {
			log.Printf("failed to send OTP email to %s: %v", u.Email, err)
		}
	}()
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
