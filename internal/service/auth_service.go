package service

import (
	"crypto/subtle"
	"strings"

	"meal-pickup/internal/model"

	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	pin    []byte
	logger zerolog.Logger
}

// NewAuthService creates an auth service for the given admin PIN.
func NewAuthService(pin string, logger zerolog.Logger) AuthService {
	return &authService{
		pin:    []byte(strings.TrimSpace(pin)),
		logger: logger.With().Str("service", "auth").Logger(),
	}
}

func (s *authService) Login(pin string) error {
	if !s.matches(pin) {
		s.logger.Warn().Msg("admin login failed")
		return model.ErrInvalidPIN
	}
	return nil
}

func (s *authService) Authorize(pin string) error {
	if !s.matches(pin) {
		return model.ErrUnauthorised
	}
	return nil
}

// matches compares the trimmed candidate with the configured PIN in constant time.
func (s *authService) matches(candidate string) bool {
	if len(s.pin) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(candidate)), s.pin) == 1
}
