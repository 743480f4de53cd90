package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsCardNumber reports whether s is a well-formed hand-keyed card number.
// Physical punch cards carry a Luhn check digit so operator typos are
// rejected before the ledger is consulted.
func IsCardNumber(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
