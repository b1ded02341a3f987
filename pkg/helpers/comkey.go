package helpers

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrUnauthorized is the only error the key check ever surfaces. The cause
// (missing header, wrong key, unset secret) stays internal so callers cannot
// probe the configuration.
var ErrUnauthorized = errors.New("Unauthorized")

// KeyValidator compares a caller-supplied Com-X-Key value against the
// process-wide shared secret. The secret is fixed at construction time.
type KeyValidator struct {
	secret string
	logger *logrus.Logger
}

func NewKeyValidator(secret string, logger *logrus.Logger) *KeyValidator {
	return &KeyValidator{secret: secret, logger: logger}
}

// Validate accepts only a non-empty secret that matches the presented key
// exactly. An unset secret authenticates nobody.
func (v *KeyValidator) Validate(presented string) error {
	if v.secret == "" || presented != v.secret {
		if v.logger != nil {
			v.logger.Error("invalid communication key")
		}
		return ErrUnauthorized
	}
	return nil
}
