package validator

import (
	"encoding/json"
	"testing"
)

func TestValidateExpense(t *testing.T) {
	tests := []struct {
		name        string
		date        string
		expenseType string
		bank        string
		category    string
		description string
		amount      any
		wantErr     string
	}{
		{
			name: "missing_date",
			date: "", expenseType: "Income", bank: "ICICI", category: "Salary", amount: 100.0,
			wantErr: "Date is required",
		},
		{
			name: "unknown_type",
			date: "2024-01-01", expenseType: "Loan", bank: "ICICI", category: "Salary", amount: 100.0,
			wantErr: "Invalid type",
		},
		{
			name: "unknown_bank",
			date: "2024-01-01", expenseType: "Income", bank: "HDFC", category: "Salary", amount: 100.0,
			wantErr: "Invalid bank",
		},
		{
			name: "expense_category_on_income",
			date: "2024-01-01", expenseType: "Income", bank: "ICICI", category: "Home Expense", amount: 100.0,
			wantErr: "Invalid category",
		},
		{
			name: "income_category_on_expense",
			date: "2024-01-01", expenseType: "Expense", bank: "ICICI", category: "Salary", amount: 100.0,
			wantErr: "Invalid category",
		},
		{
			name: "non_numeric_amount",
			date: "2024-01-01", expenseType: "Income", bank: "ICICI", category: "Salary", amount: "lots",
			wantErr: "Invalid amount",
		},
		{
			name: "negative_amount",
			date: "2024-01-01", expenseType: "Income", bank: "ICICI", category: "Salary", amount: -5.0,
			wantErr: "Amount must be positive",
		},
		{
			name: "zero_amount",
			date: "2024-01-01", expenseType: "Income", bank: "ICICI", category: "Salary", amount: 0.0,
			wantErr: "Amount must be positive",
		},
		{
			name: "missing_amount_treated_as_zero",
			date: "2024-01-01", expenseType: "Income", bank: "ICICI", category: "Salary", amount: nil,
			wantErr: "Amount must be positive",
		},
		{
			name: "absent_raw_amount_treated_as_zero",
			date: "2024-01-01", expenseType: "Income", bank: "ICICI", category: "Salary",
			amount:  json.RawMessage(nil),
			wantErr: "Amount must be positive",
		},
		{
			name: "explicit_null_amount",
			date: "2024-01-01", expenseType: "Income", bank: "ICICI", category: "Salary",
			amount:  json.RawMessage("null"),
			wantErr: "Invalid amount",
		},
		{
			name: "description_over_100_chars",
			date: "2024-01-01", expenseType: "Income", bank: "ICICI", category: "Salary",
			description: string(make([]byte, 101)), amount: 100.0,
			wantErr: "Description too long",
		},
		{
			name: "valid_income",
			date: "2024-01-01", expenseType: "Income", bank: "ICICI", category: "Salary", amount: 100.0,
		},
		{
			name: "valid_expense_with_spaced_values",
			date: "2024-01-02", expenseType: "Expense", bank: "Credit Card", category: "Home Expense", amount: 42.5,
		},
		{
			name: "numeric_string_amount",
			date: "2024-01-03", expenseType: "Expense", bank: "ICICI", category: "Hospital", amount: "42.5",
		},
		{
			name: "raw_numeric_amount",
			date: "2024-01-04", expenseType: "Income", bank: "ICICI", category: "Interest",
			amount: json.RawMessage("42.5"),
		},
		{
			name: "raw_numeric_string_amount",
			date: "2024-01-05", expenseType: "Income", bank: "ICICI", category: "Interest",
			amount: json.RawMessage(`"42.5"`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateExpense(tt.date, tt.expenseType, tt.bank, tt.category, tt.description, tt.amount)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected record to pass, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("expected message %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateExpenseShortCircuits(t *testing.T) {
	// Every field is invalid; only the first check's message may surface.
	_, err := ValidateExpense("", "Loan", "HDFC", "Groceries", string(make([]byte, 200)), "junk")
	if err == nil || err.Error() != "Date is required" {
		t.Fatalf("expected first failing check to win, got %v", err)
	}
}

func TestValidateExpenseParsedAmount(t *testing.T) {
	value, err := ValidateExpense("2024-01-01", "Income", "ICICI", "Salary", "", "99.9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 99.9 {
		t.Errorf("expected parsed amount 99.9, got %v", value)
	}
}
