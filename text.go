package base62

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// EncodeString encodes the UTF-8 bytes of s. A string holding invalid UTF-8
// is rejected with ErrTypeMismatch.
func EncodeString(s string) (string, error) {
	if _, _, err := transform.String(encoding.UTF8Validator, s); err != nil {
		return "", fmt.Errorf("%w: not UTF-8 text: %v", ErrTypeMismatch, err)
	}
	return EncodeBytes([]byte(s)), nil
}

// DecodeString reverses EncodeString. Decoded bytes that are not valid UTF-8
// produce the transcoder's error, not ErrInvalidCharacter.
func DecodeString(s string) (string, error) {
	b, err := DecodeBytes(s)
	if err != nil {
		return "", err
	}
	text, _, err := transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return "", fmt.Errorf("base62: decoded bytes: %w", err)
	}
	return string(text), nil
}
