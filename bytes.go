package base62

import "math/big"

// sentinel is prepended to byte input so that leading zero bytes survive the
// conversion and non-empty input never encodes to zero.
const sentinel = 0x01

// EncodeBytes encodes b. Empty input encodes to the empty string.
func EncodeBytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	buf := make([]byte, len(b)+1)
	buf[0] = sentinel
	copy(buf[1:], b)
	return encodeMagnitude(new(big.Int).SetBytes(buf))
}

// DecodeBytes reverses EncodeBytes. The most significant byte of the decoded
// magnitude is the sentinel and is dropped.
func DecodeBytes(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	n, err := DecodeBigInt(s)
	if err != nil {
		return nil, err
	}
	raw := n.Bytes()
	if len(raw) == 0 {
		return []byte{}, nil
	}
	return raw[1:], nil
}
