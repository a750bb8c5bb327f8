package kernel

import (
	"strings"
	"unicode/utf8"

	"vizoshop/internal/pkg/errs"
)

// MaxOwnerIDLength matches the width of the owner columns.
const MaxOwnerIDLength = 128

var ErrOwnerIDIsRequired = errs.NewValueIsRequiredError("ownerID")

// OwnerID is the identity of the signed-in shopper as issued by the session
// provider. It is opaque: no format is assumed beyond being non-blank and at
// most MaxOwnerIDLength characters.
type OwnerID struct {
	value string
}

func NewOwnerID(value string) (OwnerID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return OwnerID{}, ErrOwnerIDIsRequired
	}
	if n := utf8.RuneCountInString(value); n > MaxOwnerIDLength {
		return OwnerID{}, errs.NewValueIsOutOfRangeError("ownerID length", n, 1, MaxOwnerIDLength)
	}
	return OwnerID{value: value}, nil
}

func (o OwnerID) String() string {
	return o.value
}

// Prefix returns at most n leading characters of the identity.
//
// Example:
//
//	owner, _ := kernel.NewOwnerID("u1AbCdEfGh")
//	owner.Prefix(6) // "u1AbCd"
func (o OwnerID) Prefix(n int) string {
	runes := []rune(o.value)
	if n >= len(runes) {
		return o.value
	}
	return string(runes[:n])
}

func (o OwnerID) IsEqual(other OwnerID) bool {
	return o.value == other.value
}

func (o OwnerID) Validate() error {
	if o.value == "" {
		return ErrOwnerIDIsRequired
	}
	return nil
}
