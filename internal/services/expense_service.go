package services

import (
	"gorm.io/gorm"

	apperrors "khata/internal/errors"
	"khata/internal/models"
	"khata/internal/validator"
)

// expenseService handles ledger operations. Every operation is a single
// statement; atomicity comes from the store itself.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense validates and inserts a new ledger entry.
func (s *expenseService) CreateExpense(date, expenseType, bank, category, description string, amount any) (*models.Expense, error) {
	value, err := validator.ValidateExpense(date, expenseType, bank, category, description, amount)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Date:        date,
		Type:        expenseType,
		Bank:        bank,
		Category:    category,
		Description: description,
		Amount:      value,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// ListExpenses returns the whole ledger ordered by the date column as
// stored, which for TEXT dates is lexicographic.
func (s *expenseService) ListExpenses() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Order("date ASC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return expenses, nil
}

// UpdateExpense validates and replaces all fields of an entry. An unknown id
// matches zero rows and the update succeeds silently.
func (s *expenseService) UpdateExpense(id uint, date, expenseType, bank, category, description string, amount any) error {
	value, err := validator.ValidateExpense(date, expenseType, bank, category, description, amount)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"date":        date,
		"type":        expenseType,
		"bank":        bank,
		"category":    category,
		"description": description,
		"amount":      value,
	}
	if err := s.db.Model(&models.Expense{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteExpense removes an entry. Deleting an unknown id is a silent no-op.
func (s *expenseService) DeleteExpense(id uint) error {
	if err := s.db.Delete(&models.Expense{}, id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
