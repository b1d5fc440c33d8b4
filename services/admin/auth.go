package admin

import (
	"context"
	"fmt"

	"wavehouse/models"
	"wavehouse/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces the bcrypt hash stored in ADMIN_PASSWORD_HASH.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// ResolvePasswordHash prefers a configured bcrypt hash and falls back to hashing the plaintext password.
func ResolvePasswordHash(hash, plain string) ([]byte, error) {
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is not a bcrypt hash: %w", err)
		}
		return []byte(hash), nil
	}
	if plain == "" {
		return nil, nil
	}
	return HashPassword(plain)
}

// Login checks the admin password and opens a session.
func (s *DefaultAdminService) Login(ctx context.Context, password string) (*models.AdminSession, error) {
	if len(s.passwordHash) == 0 || s.signer == nil {
		return nil, ErrAdminDisabled
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.logger.Warn("admin login failed")
		return nil, ErrInvalidPassword
	}

	token, exp, err := s.signer.GenerateToken(utils.AdminSubject, s.sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	if err := s.sessions.Save(ctx, utils.HashToken(token), s.sessionTTL); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	s.logger.Info("admin logged in", zap.Time("expires_at", exp))
	return &models.AdminSession{Token: token, ExpiresAt: exp}, nil
}

// Logout revokes the session of token.
func (s *DefaultAdminService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, utils.HashToken(token))
}

// Authenticate accepts a token only while it is validly signed, unexpired and its session is live.
func (s *DefaultAdminService) Authenticate(ctx context.Context, token string) error {
	if s.signer == nil || token == "" {
		return ErrUnauthorized
	}
	sub, err := s.signer.ExtractSubject(token)
	if err != nil || sub != utils.AdminSubject {
		return ErrUnauthorized
	}
	ok, err := s.sessions.Exists(ctx, utils.HashToken(token))
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}
