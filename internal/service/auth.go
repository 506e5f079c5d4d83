package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"golang.org/x/crypto/bcrypt"
)

var tracer = otel.Tracer("auth")

// AuthService gates the admin surface behind a single shared secret.
// The secret may be configured as plain text or as a bcrypt hash
// (recognized by its prefix). This is a demo-grade gate: no sessions,
// no token issuance, no expiry.
type AuthService struct {
	secret string
}

func NewAuthService(secret string) *AuthService {
	return &AuthService{secret: secret}
}

type AuthResult struct {
	Role string
}

// Authenticate checks the presented secret against the configured one.
func (s *AuthService) Authenticate(ctx context.Context, secret string) (*AuthResult, error) {
	_, span := tracer.Start(ctx, "Auth.Service.Authenticate")
	defer span.End()

	if s.secret == "" {
		err := fmt.Errorf("admin access is not configured")
		span.RecordError(err)
		return nil, err
	}

	if strings.HasPrefix(s.secret, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(s.secret), []byte(secret)); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("invalid credentials")
		}
	} else if subtle.ConstantTimeCompare([]byte(s.secret), []byte(secret)) != 1 {
		err := fmt.Errorf("invalid credentials")
		span.RecordError(err)
		return nil, err
	}

	return &AuthResult{Role: "admin"}, nil
}
