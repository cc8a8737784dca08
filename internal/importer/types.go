// Package importer implements the bank statement import engine: it
// turns a parsed statement into ledger transactions for a known account,
// drops duplicates and reconciles the account balance.
package importer

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoAttributableTransactions is returned when parsing succeeded, but no
	// document yielded a positive amount with an attributable direction.
	ErrNoAttributableTransactions = errors.New("the statement contains no transactions attributable to this account")

	// ErrNoStatedClosingBalance is returned when a stated closing balance is
	// applied from an outcome whose statement did not state one.
	ErrNoStatedClosingBalance = errors.New("the statement did not state a closing balance")
)

// UnknownAccountSignal is emitted when the statement's account number does
// not match any known account. No ledger or balance mutation happens until
// the caller confirms the creation of the account.
type UnknownAccountSignal struct {
	AccountNumber  string          `json:"accountNumber" example:"KZ001"`
	BankName       string          `json:"bankName" example:"АО Народный Банк"`        // Inferred from the statement's documents
	OpeningBalance decimal.Decimal `json:"openingBalance" example:"1000.50"`           // Opening balance as stated in the file
}

// Outcome is the result of one completed statement import.
type Outcome struct {
	AccountID            uuid.UUID           `json:"accountId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Added                int                 `json:"added" example:"12"`                 // Number of transactions appended to the ledger
	Duplicates           int                 `json:"duplicates" example:"3"`             // Number of candidates skipped as duplicates
	StatedClosingBalance decimal.NullDecimal `json:"statedClosingBalance"`               // Closing balance as stated in the file, if any
	ProjectedBalance     decimal.Decimal     `json:"projectedBalance" example:"51000.5"` // Balance kept by the system after the import
	SkippedBalanceUpdate bool                `json:"skippedBalanceUpdate"`               // true when the file was older than the ledger and the balance was left untouched
}

// Discrepancy reports whether the file's stated closing balance disagrees
// with the balance kept by the system. It is only meaningful when the
// balance update was not skipped.
func (o Outcome) Discrepancy() bool {
	return o.StatedClosingBalance.Valid &&
		!o.SkippedBalanceUpdate &&
		!o.StatedClosingBalance.Decimal.Equal(o.ProjectedBalance)
}
