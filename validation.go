package inventario

import (
	"errors"
	"strings"
)

// Validation failures are shown to the operator verbatim, hence the
// Portuguese messages.
var (
	// ErrCodeEmpty reports an empty (or blank) code.
	ErrCodeEmpty = errors.New("informe o código")
	// ErrCodeFormat reports a code that is not at least 8 decimal digits.
	ErrCodeFormat = errors.New("o código deve conter pelo menos 8 números")
	// ErrQuantityNotPositive reports a non-positive quantity.
	ErrQuantityNotPositive = errors.New("a quantidade deve ser maior que zero")
	// ErrDuplicate is the advisory duplicate-of-last warning. It blocks a
	// submission by default, but callers may deliberately override it once
	// the operator confirms.
	ErrDuplicate = errors.New("esse item já foi registrado anteriormente com a mesma quantidade")
)

// ValidateCode checks that code, after trimming, is a string of at least 8
// decimal digits.
func ValidateCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrCodeEmpty
	}
	if len(code) < 8 {
		return ErrCodeFormat
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ErrCodeFormat
		}
	}
	return nil
}

// ValidateQuantity checks that quantity is strictly positive.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}
	return nil
}

// IsDuplicateOfLast reports whether the submission repeats the most recent
// ledger record exactly. Only the last record is considered: this guards
// against an accidental double entry, it is not a full-history deduplication.
func IsDuplicateOfLast(ledger *Ledger, code string, quantity int) bool {
	last, ok := ledger.Last()
	return ok && last.Code == code && last.Quantity == quantity
}

// ValidateSubmission runs the submission checks in order (empty code, code
// format, quantity, duplicate guard) and returns the first failure.
func ValidateSubmission(ledger *Ledger, code string, quantity int) error {
	if err := ValidateCode(code); err != nil {
		return err
	}
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	if IsDuplicateOfLast(ledger, strings.TrimSpace(code), quantity) {
		return ErrDuplicate
	}
	return nil
}
