package order

import (
	"fmt"

	"vizoshop/internal/pkg/errs"
)

// Source tags where the items of an order were taken from.
type Source string

const (
	SourceCart   Source = "cart"
	SourceDirect Source = "direct"
)

func (s Source) Validate() error {
	if s != SourceCart && s != SourceDirect {
		return errs.NewValueIsInvalidErrorWithCause("source", fmt.Errorf("%q is not a known order source", string(s)))
	}
	return nil
}

func (s Source) String() string {
	return string(s)
}
