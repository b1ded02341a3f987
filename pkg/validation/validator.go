// Package validation holds the per-field input checks for the user API.
// The error strings are part of the wire contract and must not change.
package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidName = errors.New("Invalid name")
	ErrNameEmpty   = errors.New("Name cannot be empty")
	ErrNameFormat  = errors.New("Name cannot be filled with number or symbol")

	ErrInvalidUserID = errors.New("Invalid user_id")
	ErrZeroUserID    = errors.New("User ID cannot be 0")

	ErrInvalidPageNum  = errors.New("Invalid page_num")
	ErrInvalidPageSize = errors.New("Invalid page_size")
)

// A name is rejected when, after removing spaces, any rune remains that is a
// digit or not a word character. Net effect: letters (any script) and
// underscore pass, everything else fails. The underscore is deliberate; it
// matches the behavior callers already depend on.
var nameReject = regexp.MustCompile(`[^\p{L}_]`)

// Name validates a display name and returns it unmodified (spaces included).
func Name(raw string) (string, error) {
	if raw == "" {
		return "", ErrNameEmpty
	}
	stripped := strings.ReplaceAll(raw, " ", "")
	if nameReject.MatchString(stripped) {
		return "", ErrNameFormat
	}
	return raw, nil
}

// UserID parses a user id. Only the literal 0 is rejected as a value;
// negative ids pass through and simply match no row.
func UserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ErrInvalidUserID
	}
	if id == 0 {
		return 0, ErrZeroUserID
	}
	return id, nil
}

// PageNum parses the page_num query parameter. No lower bound is enforced.
func PageNum(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidPageNum
	}
	return n, nil
}

// PageSize parses the page_size query parameter. No bounds are enforced.
func PageSize(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidPageSize
	}
	return n, nil
}
