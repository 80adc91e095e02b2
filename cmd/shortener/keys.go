package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Bajahaw/base62"
)

// KeyOffset is 62^5; ids are shifted by it so every key has at least six characters.
const KeyOffset = 916132832

var errInvalidKey = errors.New("invalid key")

func KeyForID(id int64) (string, error) {
	if id < 0 || id > math.MaxInt64-KeyOffset {
		return "", fmt.Errorf("%w: id %d out of range", errInvalidKey, id)
	}
	return base62.EncodeInteger(id + KeyOffset)
}

// IDForKey accepts only the minimal form of a key, so every id has exactly one key.
func IDForKey(key string) (int64, error) {
	if strings.HasPrefix(key, base62.Alphabet[:1]) {
		return 0, fmt.Errorf("%w: %q has a leading zero", errInvalidKey, key)
	}
	n, err := base62.DecodeInteger(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidKey, err)
	}
	if n < KeyOffset {
		return 0, fmt.Errorf("%w: %q is too short", errInvalidKey, key)
	}
	return n - KeyOffset, nil
}
