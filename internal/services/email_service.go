package services

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/example/otpauth/internal/models"
)

// OtpSender delivers a one-time password to a user.
type OtpSender interface {
	SendOtpEmail(user *models.User, otp string) error
}

// EmailService sends OTP codes over authenticated SMTP.
type EmailService struct {
	host     string
	port     string
	username string
	password string
}

// NewEmailService creates a new EmailService.
func NewEmailService(host, port, username, password string) *EmailService {
	return &EmailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

// SendOtpEmail delivers the verification code to the user's address.
func (s *EmailService) SendOtpEmail(user *models.User, otp string) error {
	if s.username == "" {
		log.Println("[Email] transport not configured, skipping send")
		return nil
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Email Verification OTP\r\n\r\nYour OTP for email verification is: %s\r\n",
		s.username, user.Email, otp,
	)

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := s.host + ":" + s.port

	return smtp.SendMail(addr, auth, s.username, []string{user.Email}, []byte(msg))
}
