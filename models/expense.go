package models

// Expense categories used by the classifier. Order matters elsewhere;
// these are just the canonical labels.
const (
	CategoryFood          = "Food & Dining"
	CategoryTransport     = "Transportation"
	CategoryPersonal      = "Personal Items"
	CategoryHealthcare    = "Healthcare"
	CategoryEntertainment = "Entertainment"
	CategoryShopping      = "Shopping"
	CategoryOther         = "Other"
)

// ExpenseRecord is one structured expense extracted from free text.
// Records are immutable once assembled and live only for the duration
// of a single request.
type ExpenseRecord struct {
	Date        string  `json:"date"` // ISO 8601, YYYY-MM-DD
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}
