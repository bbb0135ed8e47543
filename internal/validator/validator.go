// Package validator checks incoming expense records against the closed
// enumerations and numeric constraints of the ledger.
//
// Callers match on the exact message text of the returned errors, so the
// checks run in a fixed order, stop at the first failure, and the messages
// must never change.
package validator

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	apperrors "khata/internal/errors"
	"khata/internal/models"
)

var validate = validator.New()

// incomeCategories are the categories allowed when type is Income.
var incomeCategories = map[string]bool{
	"Salary":        true,
	"Interest":      true,
	"Dividend":      true,
	"Reimbursement": true,
}

// expenseCategories are the categories allowed when type is Expense.
var expenseCategories = map[string]bool{
	"Home Expense":  true,
	"Investment":    true,
	"Self Expense":  true,
	"Other Expense": true,
	"Hospital":      true,
}

// ValidateExpense runs the six record checks in order, short-circuiting on
// the first failure. On success it returns the amount parsed as a float64.
//
// The amount is accepted as a JSON number or a numeric string; anything else
// fails the parse check.
func ValidateExpense(date, expenseType, bank, category, description string, amount any) (float64, error) {
	if date == "" {
		return 0, apperrors.Validation("Date is required")
	}
	if err := validate.Var(expenseType, "oneof='Income' 'Expense'"); err != nil {
		return 0, apperrors.Validation("Invalid type")
	}
	if err := validate.Var(bank, "oneof='ICICI' 'Credit Card'"); err != nil {
		return 0, apperrors.Validation("Invalid bank")
	}

	categories := expenseCategories
	if expenseType == models.TypeIncome {
		categories = incomeCategories
	}
	if !categories[category] {
		return 0, apperrors.Validation("Invalid category")
	}

	value, err := parseAmount(amount)
	if err != nil {
		return 0, apperrors.Validation("Invalid amount")
	}
	if value <= 0 {
		return 0, apperrors.Validation("Amount must be positive")
	}

	if err := validate.Var(description, "max=100"); err != nil {
		return 0, apperrors.Validation("Description too long")
	}

	return value, nil
}

// parseAmount coerces the raw JSON value of the amount field to a float64.
// A missing amount parses as zero and is caught by the positivity check; an
// explicit null fails the parse like any other non-numeric value.
func parseAmount(amount any) (float64, error) {
	switch v := amount.(type) {
	case nil:
		return 0, nil
	case json.RawMessage:
		if v == nil {
			return 0, nil
		}
		var inner any
		if err := json.Unmarshal(v, &inner); err != nil {
			return 0, err
		}
		if inner == nil {
			return 0, fmt.Errorf("amount is null")
		}
		return parseAmount(inner)
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("unsupported amount type %T", amount)
	}
}
