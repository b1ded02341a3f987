package helpers

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestKeyValidator_Match(t *testing.T) {
	v := NewKeyValidator("s3cret", quietLogger())
	assert.NoError(t, v.Validate("s3cret"))
}

func TestKeyValidator_Mismatch(t *testing.T) {
	v := NewKeyValidator("s3cret", quietLogger())
	for _, presented := range []string{"", "wrong", "S3CRET", "s3cret "} {
		err := v.Validate(presented)
		assert.ErrorIs(t, err, ErrUnauthorized, "presented %q", presented)
		assert.Equal(t, "Unauthorized", err.Error())
	}
}

func TestKeyValidator_UnsetSecretRejectsEveryone(t *testing.T) {
	v := NewKeyValidator("", quietLogger())
	// an empty presented key must not match an empty secret
	assert.ErrorIs(t, v.Validate(""), ErrUnauthorized)
	assert.ErrorIs(t, v.Validate("anything"), ErrUnauthorized)
}

func TestKeyValidator_NilLogger(t *testing.T) {
	v := NewKeyValidator("k", nil)
	assert.NotPanics(t, func() { _ = v.Validate("wrong") })
}
