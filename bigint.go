package base62

import (
	"fmt"
	"math/big"
)

// Ten digits are peeled per big division; 62^10 still fits in a uint64.
const (
	chunkDigits = 10
	chunkBase   = 839299365868340224
)

var (
	bigChunkBase = new(big.Int).SetUint64(chunkBase)
	pow62        = func() [chunkDigits + 1]uint64 {
		var p [chunkDigits + 1]uint64
		p[0] = 1
		for i := 1; i < len(p); i++ {
			p[i] = p[i-1] * base
		}
		return p
	}()
)

// EncodeBigInt returns the minimal base62 representation of n.
// Zero encodes as "0". n is not modified.
func EncodeBigInt(n *big.Int) (string, error) {
	if n == nil {
		return "", fmt.Errorf("%w: nil big.Int", ErrInvalidValue)
	}
	if n.Sign() < 0 {
		return "", fmt.Errorf("%w: %s is negative", ErrInvalidValue, n)
	}
	if n.Sign() == 0 {
		return Alphabet[:1], nil
	}
	return encodeMagnitude(n), nil
}

// encodeMagnitude expects n > 0.
func encodeMagnitude(n *big.Int) string {
	buf := make([]byte, n.BitLen()/5+chunkDigits)
	pos := len(buf)
	q := new(big.Int).Set(n)
	r := new(big.Int)
	for q.Sign() > 0 {
		q.QuoRem(q, bigChunkBase, r)
		d := r.Uint64()
		for i := 0; i < chunkDigits; i++ {
			pos--
			buf[pos] = Alphabet[d%base]
			d /= base
		}
	}
	// the most significant chunk is zero padded
	for buf[pos] == Alphabet[0] {
		pos++
	}
	return string(buf[pos:])
}

// DecodeBigInt evaluates s as a base62 number, most significant digit first.
// The empty string decodes to zero.
func DecodeBigInt(s string) (*big.Int, error) {
	var (
		n       = new(big.Int)
		scratch = new(big.Int)
		chunk   uint64
		digits  int
	)
	for i, r := range s {
		v, err := valueOf(r, i)
		if err != nil {
			return nil, err
		}
		chunk = chunk*base + uint64(v)
		digits++
		if digits == chunkDigits {
			n.Mul(n, bigChunkBase)
			n.Add(n, scratch.SetUint64(chunk))
			chunk, digits = 0, 0
		}
	}
	if digits > 0 {
		n.Mul(n, scratch.SetUint64(pow62[digits]))
		n.Add(n, scratch.SetUint64(chunk))
	}
	return n, nil
}
