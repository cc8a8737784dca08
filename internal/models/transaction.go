package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/orbita-crm/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionDirection describes whether a transaction adds money to its
// account or removes money from it.
type TransactionDirection string

const (
	DirectionIncome  TransactionDirection = "INCOME"
	DirectionExpense TransactionDirection = "EXPENSE"
)

// Transaction represents a single ledger entry for an account.
//
// The amount is always positive, the direction carries the sign.
type Transaction struct {
	DefaultModel
	Date         types.Date
	Amount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Direction    TransactionDirection
	Category     string
	AccountID    uuid.UUID
	Account      Account `json:"-"`
	Counterparty string
	Description  string
	Imported     bool // true when the transaction was created by the statement import engine
}

// BeforeSave validates the transaction and trims whitespace from all
// strings.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if t.Direction != DirectionIncome && t.Direction != DirectionExpense {
		return ErrTransactionDirectionInvalid
	}

	t.Category = strings.TrimSpace(t.Category)
	t.Counterparty = strings.TrimSpace(t.Counterparty)
	t.Description = strings.TrimSpace(t.Description)

	return nil
}

// Signed returns the amount with the sign implied by the direction.
func (t Transaction) Signed() decimal.Decimal {
	if t.Direction == DirectionExpense {
		return t.Amount.Neg()
	}

	return t.Amount
}
