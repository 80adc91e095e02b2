package base62

import (
	"fmt"
	"math/big"
)

// Encode encodes v with the codec matching its type: strings as UTF-8 text,
// byte slices as bytes, integers and floats as numbers, and big.Int values as
// arbitrary precision numbers. Any other type yields ErrTypeMismatch.
func Encode(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return EncodeString(v)
	case []byte:
		return EncodeBytes(v), nil
	case int:
		return EncodeInteger(int64(v))
	case int8:
		return EncodeInteger(int64(v))
	case int16:
		return EncodeInteger(int64(v))
	case int32:
		return EncodeInteger(int64(v))
	case int64:
		return EncodeInteger(v)
	case uint:
		return EncodeUint64(uint64(v)), nil
	case uint8:
		return EncodeUint64(uint64(v)), nil
	case uint16:
		return EncodeUint64(uint64(v)), nil
	case uint32:
		return EncodeUint64(uint64(v)), nil
	case uint64:
		return EncodeUint64(v), nil
	case float32:
		return EncodeNumber(float64(v))
	case float64:
		return EncodeNumber(v)
	case *big.Int:
		return EncodeBigInt(v)
	case big.Int:
		return EncodeBigInt(&v)
	default:
		return "", fmt.Errorf("%w: cannot encode %T", ErrTypeMismatch, v)
	}
}
