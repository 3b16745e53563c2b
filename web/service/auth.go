package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"quote-hunt/util/crypto"

	"github.com/google/uuid"
)

// AdminService is the admin gate. It checks the shared admin password and
// mints stateless bearer tokens of the form "value.signature" where the
// signature is HMAC-SHA256(secret, value). Validity is determined purely by
// recomputing the signature; the session cookie max-age is the only lifetime
// bound.
type AdminService struct {
	settingService SettingService
}

// Login verifies the admin password and mints a session token. Returns
// ErrPasswordNotSet when no password is configured and ErrInvalidPassword on
// mismatch.
func (s *AdminService) Login(password string) (string, error) {
	hash, err := s.settingService.GetAdminPasswordHash()
	if err != nil {
		return "", err
	}
	if hash == "" {
		return "", ErrPasswordNotSet
	}
	if !crypto.CheckPasswordHash(hash, password) {
		return "", ErrInvalidPassword
	}

	value := strings.ReplaceAll(uuid.NewString(), "-", "")
	signature, err := s.sign(value)
	if err != nil {
		return "", err
	}
	return value + "." + signature, nil
}

// Validate reports whether the token carries a signature minted with the
// current secret. Malformed or absent tokens fail closed.
func (s *AdminService) Validate(token string) bool {
	if token == "" {
		return false
	}
	value, signature, found := strings.Cut(token, ".")
	if !found || value == "" || signature == "" {
		return false
	}
	expected, err := s.sign(value)
	if err != nil {
		return false
	}
	if len(signature) != len(expected) {
		return false
	}
	return hmac.Equal([]byte(signature), []byte(expected))
}

func (s *AdminService) sign(value string) (string, error) {
	secret, err := s.settingService.GetSecret()
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil)), nil
}
