package base62

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeString(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Hello, World!", "8nlogx6nlNdJhVT24v"},
		{"Hello world!", "28B5ymDkgSU62aA0v"},
		{"Another example🏴", "B6f8m2TtOhNkJuVfeJVXhKTPAi"},
		{"1234567890", "7CipUfMcknk2uu"},
		{"🦄", "95s3vg"},
		{"😊🚀🌟💥", "F7782ZaAxP6MFPZUluW18H"},
		{`Special characters ~` + "`" + `!@#$%^&*()_+-={}[]:";'<>?,./|\`, "BU3kOcSFw49tim4FMGq22KElf62dgQ6YAeCoc2XVcK32JQ5LoO2TfOn2cwCL5PPeRU9BE"},
		{"", ""},
		{"0", "4u"},
		{"000x", "5ZNTk8"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			encoded, err := EncodeString(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, encoded)

			decoded, err := DecodeString(encoded)
			require.NoError(t, err)
			assert.Equal(t, tc.input, decoded)
		})
	}
}

func TestEncodeStringInvalidUTF8(t *testing.T) {
	_, err := EncodeString("ab\xffcd")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDecodeStringInvalidUTF8(t *testing.T) {
	encoded := EncodeBytes([]byte{0xf0, 0x9f})
	_, err := DecodeString(encoded)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCharacter)
}

func TestDecodeStringInvalidCharacter(t *testing.T) {
	_, err := DecodeString("8nlogx6nl=dJhVT24v")
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}
