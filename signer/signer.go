package signer

import (
	"crypto/subtle"
	"strings"

	"github.com/golang-module/dongle"
)

// Sign joins parts with sep and returns the lowercase hex MD5 of the result.
func Sign(sep string, parts ...string) string {
	return Hash(strings.Join(parts, sep))
}

func Hash(payload string) string {
	return dongle.Encrypt.FromString(payload).ByMd5().ToHexString()
}

// Equal compares two hex signatures in constant time, ignoring case.
func Equal(expected string, got string) bool {
	a := []byte(strings.ToLower(expected))
	b := []byte(strings.ToLower(got))
	return subtle.ConstantTimeCompare(a, b) == 1
}
