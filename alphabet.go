package base62

// Alphabet lists the 62 symbols in value order: digits, then upper case, then lower case.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	base    = 62
	invalid = 0xFF
)

var revIndex = func() [256]byte {
	var rev [256]byte
	for i := range rev {
		rev[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		rev[Alphabet[i]] = byte(i)
	}
	return rev
}()

// valueOf returns the digit value of r, or a *CharacterError when r is not
// part of the alphabet. offset is the byte position of r in the input.
func valueOf(r rune, offset int) (byte, error) {
	if r < 0 || r > 0xFF || revIndex[r] == invalid {
		return 0, &CharacterError{Char: r, Offset: offset}
	}
	return revIndex[r], nil
}
