package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor for stored credentials.
const DefaultCost = 12

// MaxLength is the longest input bcrypt accepts, in bytes.
const MaxLength = 72

var (
	ErrInvalidPassword   = errors.New("invalid password")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrHashingPassword   = errors.New("error hashing password")
	ErrVerifyingPassword = errors.New("error verifying password")

	// ErrPasswordTooLong is a caller mistake rather than a hashing failure.
	ErrPasswordTooLong = fmt.Errorf("%w: longer than %d bytes", ErrHashingPassword, MaxLength)
)

func Hash(plain string) (string, error) {
	switch {
	case plain == "":
		return "", ErrEmptyPassword
	case len(plain) > MaxLength:
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(hashed), nil
}

// Verify reports ErrInvalidPassword for a mismatch and ErrVerifyingPassword when the
// stored hash itself is unusable.
func Verify(plain, hashed string) error {
	if plain == "" || hashed == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))

	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("%w: %w", ErrVerifyingPassword, err)
	}
}
