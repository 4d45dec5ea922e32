package domain

// LedgerSet names one of the per-user recipe membership sets
type LedgerSet string

const (
	LedgerFavorites    LedgerSet = "favorites"
	LedgerShoppingCart LedgerSet = "shopping_cart"
)

// IsValid reports whether s is a known ledger set
func (s LedgerSet) IsValid() bool {
	return s == LedgerFavorites || s == LedgerShoppingCart
}
