package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLen is the byte length of an account address.
const AddressLen = 20

// Address is a 20-byte account address in canonical textual form:
// "0x" followed by 40 lowercase hex characters. The session layer hands an
// already-authenticated Address to every core operation.
type Address string

// ParseAddress validates and normalizes an address string.
func ParseAddress(s string) (Address, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "0x") {
		return "", fmt.Errorf("address %q: missing 0x prefix", s)
	}
	raw, err := hex.DecodeString(s[2:])
	if err != nil {
		return "", fmt.Errorf("address %q: %w", s, err)
	}
	if len(raw) != AddressLen {
		return "", fmt.Errorf("address %q: want %d bytes, got %d", s, AddressLen, len(raw))
	}
	return Address(s), nil
}

// MustParseAddress is ParseAddress that panics on error. For tests and seeds.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Address) String() string { return string(a) }

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool { return a == "" }

// Bytes returns the 20 raw address bytes.
// Panics if the address was not produced by ParseAddress.
func (a Address) Bytes() []byte {
	raw, err := hex.DecodeString(strings.TrimPrefix(string(a), "0x"))
	if err != nil || len(raw) != AddressLen {
		panic(fmt.Sprintf("domain: malformed address %q", string(a)))
	}
	return raw
}

// Validate checks the canonical form without re-parsing.
func (a Address) Validate() error {
	_, err := ParseAddress(string(a))
	return err
}
