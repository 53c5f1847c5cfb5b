package account

import "github.com/pulabank/corebank/pkg/domain/common"

// Variant names an account variant for open-account requests.
type Variant string

const (
	VariantSavings    Variant = "savings"
	VariantInvestment Variant = "investment"
	VariantCheque     Variant = "cheque"
)

// Valid reports whether v names a known variant.
func (v Variant) Valid() bool {
	switch v {
	case VariantSavings, VariantInvestment, VariantCheque:
		return true
	}
	return false
}

// ParseVariant converts a request string to a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if !v.Valid() {
		return "", common.ErrTypeMismatch
	}
	return v, nil
}
