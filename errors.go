package base62

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is returned when an argument is not of a kind the codec accepts.
	ErrTypeMismatch = errors.New("base62: type mismatch")
	// ErrInvalidValue is returned for negative, non-integral or non-finite numbers.
	ErrInvalidValue = errors.New("base62: invalid value")
	// ErrOverflow is returned when a decoded value does not fit the requested width.
	ErrOverflow = fmt.Errorf("%w: overflow", ErrInvalidValue)
	// ErrInvalidCharacter is matched by every *CharacterError.
	ErrInvalidCharacter = errors.New("base62: invalid character")
)

// CharacterError reports a character outside the alphabet in decoder input.
type CharacterError struct {
	Char   rune
	Offset int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("base62: unexpected character %q at offset %d", e.Char, e.Offset)
}

func (e *CharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
