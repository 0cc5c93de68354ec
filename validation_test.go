package inventario

import (
	"errors"
	"testing"
	"time"
)

func TestValidateCode(t *testing.T) {
	testCases := []struct {
		name string
		code string
		want error
	}{
		{name: "valid 8 digits", code: "12345678", want: nil},
		{name: "valid with leading zeros", code: "00012345", want: nil},
		{name: "valid longer than 8", code: "123456789012", want: nil},
		{name: "valid with surrounding spaces", code: " 12345678 ", want: nil},
		{name: "empty", code: "", want: ErrCodeEmpty},
		{name: "blank", code: "   ", want: ErrCodeEmpty},
		{name: "too short", code: "1234567", want: ErrCodeFormat},
		{name: "letters", code: "12345abc", want: ErrCodeFormat},
		{name: "space inside", code: "1234 5678", want: ErrCodeFormat},
		{name: "sign prefix", code: "-12345678", want: ErrCodeFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateCode(tc.code); !errors.Is(got, tc.want) {
				t.Errorf("ValidateCode(%q) = %v, want %v", tc.code, got, tc.want)
			}
		})
	}
}

func TestValidateQuantity(t *testing.T) {
	testCases := []struct {
		quantity int
		want     error
	}{
		{quantity: 1, want: nil},
		{quantity: 42, want: nil},
		{quantity: 0, want: ErrQuantityNotPositive},
		{quantity: -5, want: ErrQuantityNotPositive},
	}

	for _, tc := range testCases {
		if got := ValidateQuantity(tc.quantity); !errors.Is(got, tc.want) {
			t.Errorf("ValidateQuantity(%d) = %v, want %v", tc.quantity, got, tc.want)
		}
	}
}

func TestIsDuplicateOfLast(t *testing.T) {
	on := time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)

	empty := NewLedger()
	if IsDuplicateOfLast(empty, "12345678", 5) {
		t.Error("an empty ledger has no duplicates")
	}

	ledger := NewLedger()
	ledger.Append(NewCountRecord(on, "12345678", 5))
	ledger.Append(NewCountRecord(on.Add(time.Minute), "87654321", 3))

	testCases := []struct {
		name     string
		code     string
		quantity int
		want     bool
	}{
		{name: "same code and quantity as last", code: "87654321", quantity: 3, want: true},
		{name: "same code, different quantity", code: "87654321", quantity: 4, want: false},
		{name: "different code", code: "12345678", quantity: 3, want: false},
		{name: "matches an earlier record only", code: "12345678", quantity: 5, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDuplicateOfLast(ledger, tc.code, tc.quantity); got != tc.want {
				t.Errorf("IsDuplicateOfLast(%q, %d) = %v, want %v", tc.code, tc.quantity, got, tc.want)
			}
		})
	}
}

func TestValidateSubmission_Ordering(t *testing.T) {
	on := time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)
	ledger := NewLedger()
	ledger.Append(NewCountRecord(on, "12345678", 5))

	testCases := []struct {
		name     string
		code     string
		quantity int
		want     error
	}{
		{name: "empty code wins over bad quantity", code: "", quantity: 0, want: ErrCodeEmpty},
		{name: "bad format wins over bad quantity", code: "abc", quantity: -1, want: ErrCodeFormat},
		{name: "bad quantity wins over duplicate", code: "12345678", quantity: 0, want: ErrQuantityNotPositive},
		{name: "duplicate of last", code: "12345678", quantity: 5, want: ErrDuplicate},
		{name: "duplicate with spaces around code", code: " 12345678 ", quantity: 5, want: ErrDuplicate},
		{name: "valid submission", code: "87654321", quantity: 2, want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateSubmission(ledger, tc.code, tc.quantity); !errors.Is(got, tc.want) {
				t.Errorf("ValidateSubmission(%q, %d) = %v, want %v", tc.code, tc.quantity, got, tc.want)
			}
		})
	}
}

func TestValidateSubmission_DuplicateOnSecondAttempt(t *testing.T) {
	ledger := NewLedger()

	if err := ValidateSubmission(ledger, "12345678", 5); err != nil {
		t.Fatalf("first submission rejected: %v", err)
	}
	ledger.Append(NewCountRecord(time.Now(), "12345678", 5))

	if err := ValidateSubmission(ledger, "12345678", 5); !errors.Is(err, ErrDuplicate) {
		t.Errorf("second identical submission = %v, want ErrDuplicate", err)
	}
}
