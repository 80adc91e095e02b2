package base62

import (
	"fmt"
	"math"
)

// maxExactFloat is the largest integer n such that every integer in [0, n]
// has an exact float64 representation.
const maxExactFloat = 1<<53 - 1

// EncodeInteger encodes a non-negative n.
func EncodeInteger(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d is negative", ErrInvalidValue, n)
	}
	return EncodeUint64(uint64(n)), nil
}

// EncodeUint64 encodes n using native arithmetic.
func EncodeUint64(n uint64) string {
	if n == 0 {
		return Alphabet[:1]
	}
	var buf [11]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = Alphabet[n%base]
		n /= base
	}
	return string(buf[pos:])
}

// EncodeNumber encodes f, which must be a finite, non-negative integer no
// larger than 2^53-1.
func EncodeNumber(f float64) (string, error) {
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return "", fmt.Errorf("%w: %v is not finite", ErrInvalidValue, f)
	case f != math.Trunc(f):
		return "", fmt.Errorf("%w: %v is not an integer", ErrInvalidValue, f)
	case f < 0:
		return "", fmt.Errorf("%w: %v is negative", ErrInvalidValue, f)
	case f > maxExactFloat:
		return "", fmt.Errorf("%w: %v is beyond the exact integer range of float64", ErrInvalidValue, f)
	}
	return EncodeUint64(uint64(f)), nil
}

// DecodeInteger decodes s into an int64. The empty string decodes to zero.
func DecodeInteger(s string) (int64, error) {
	n, err := decodeUint(s, math.MaxInt64, "int64")
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}

// DecodeUint64 decodes s into a uint64. The empty string decodes to zero.
func DecodeUint64(s string) (uint64, error) {
	return decodeUint(s, math.MaxUint64, "uint64")
}

func decodeUint(s string, limit uint64, width string) (uint64, error) {
	var n uint64
	for i, r := range s {
		v, err := valueOf(r, i)
		if err != nil {
			return 0, err
		}
		if n > (limit-uint64(v))/base {
			return 0, fmt.Errorf("%w: %q does not fit in %s", ErrOverflow, s, width)
		}
		n = n*base + uint64(v)
	}
	return n, nil
}
