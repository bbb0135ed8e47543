package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"khata/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithName(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithName creates a user with the given username and the
// password "password123".
func CreateTestUserWithName(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates a valid Income ledger entry on the given date.
func CreateTestExpense(t *testing.T, db *gorm.DB, date string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Date:        date,
		Type:        models.TypeIncome,
		Bank:        models.BankICICI,
		Category:    "Salary",
		Description: fmt.Sprintf("fixture %d", nextID()),
		Amount:      100,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
