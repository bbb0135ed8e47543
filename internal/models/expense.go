package models

// Expense type enumeration.
const (
	TypeIncome  = "Income"
	TypeExpense = "Expense"
)

// Bank enumeration.
const (
	BankICICI      = "ICICI"
	BankCreditCard = "Credit Card"
)

// Expense represents one ledger entry. The ledger is shared across all
// authenticated users: there is deliberately no user foreign key.
//
// Date is stored as TEXT exactly as submitted, so listings ordered by date
// are byte-wise lexicographic, not calendar-aware.
type Expense struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Date        string  `gorm:"not null" json:"date"`
	Type        string  `gorm:"not null" json:"type"`
	Bank        string  `gorm:"not null" json:"bank"`
	Category    string  `gorm:"not null" json:"category"`
	Description string  `gorm:"size:100" json:"description"`
	Amount      float64 `gorm:"not null" json:"amount"`
}

// TableName overrides the default table name.
func (Expense) TableName() string { return "expenses" }
