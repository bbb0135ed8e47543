package services

import "khata/internal/models"

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
}

// ExpenseServicer defines the contract for ledger operations. The raw amount
// is passed through untyped so the validation layer owns its parsing.
type ExpenseServicer interface {
	CreateExpense(date, expenseType, bank, category, description string, amount any) (*models.Expense, error)
	ListExpenses() ([]models.Expense, error)
	UpdateExpense(id uint, date, expenseType, bank, category, description string, amount any) error
	DeleteExpense(id uint) error
}
