// Package base62 converts bytes, text, integers and big integers to and from
// strings over the alphabet 0-9, A-Z, a-z.
//
// Byte input is prefixed with a 0x01 sentinel before it is read as a
// big-endian number, so leading zero bytes round-trip and only the empty
// input encodes to the empty string. Integers use the plain positional
// form, where zero is "0".
//
// All functions are safe for concurrent use.
package base62
