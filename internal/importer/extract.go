package importer

import (
	"time"

	"github.com/google/uuid"
	"github.com/orbita-crm/backend/internal/importer/parser/onec"
	"github.com/orbita-crm/backend/internal/models"
	"github.com/orbita-crm/backend/internal/types"
	"github.com/shopspring/decimal"
)

// DefaultCounterparty is recorded when a document does not name the
// counterparty.
const DefaultCounterparty = "Контрагент не указан"

// maxDescriptionRunes is the maximum length of an imported description.
// Longer payment purposes are truncated with an ellipsis.
const maxDescriptionRunes = 200

// ExtractTransaction converts one statement document into a candidate
// ledger transaction for the account. The second return value is false
// when the document carries no positive amount with an attributable
// direction; such documents are not an error, statements contain
// non-monetary documents.
func ExtractTransaction(document onec.Document, accountID uuid.UUID, accountNumber string, now time.Time) (models.Transaction, bool) {
	amount, direction, ok := amountAndDirection(document, accountNumber)
	if !ok {
		return models.Transaction{}, false
	}

	counterparty := document.Field(onec.FieldPayerName)
	if direction == models.DirectionExpense {
		counterparty = document.Field(onec.FieldPayeeName)
	}
	if counterparty == "" {
		counterparty = DefaultCounterparty
	}

	return models.Transaction{
		Date:         documentDate(document, now),
		Amount:       amount,
		Direction:    direction,
		AccountID:    accountID,
		Counterparty: counterparty,
		Description:  truncate(document.Field(onec.FieldPurpose)),
		Imported:     true,
	}, true
}

// amountAndDirection determines the amount and direction of a document.
//
// An explicit income amount wins over an explicit expense amount, which
// wins over the generic amount. The generic amount is attributed by
// matching the document's payer and payee account numbers against the
// account's own number: the account paying means expense, the account
// receiving means income. Documents where neither side matches are
// discarded.
func amountAndDirection(document onec.Document, accountNumber string) (decimal.Decimal, models.TransactionDirection, bool) {
	if amount, err := onec.ParseAmount(document.Field(onec.FieldIncomeAmount)); err == nil && amount.IsPositive() {
		return amount, models.DirectionIncome, true
	}

	if amount, err := onec.ParseAmount(document.Field(onec.FieldExpenseAmount)); err == nil && amount.IsPositive() {
		return amount, models.DirectionExpense, true
	}

	amount, err := onec.ParseAmount(document.Field(onec.FieldAmount))
	if err != nil || !amount.IsPositive() || accountNumber == "" {
		return decimal.Zero, "", false
	}

	if document.Field(onec.FieldPayerAccount) == accountNumber {
		return amount, models.DirectionExpense, true
	}

	if document.Field(onec.FieldPayeeAccount) == accountNumber {
		return amount, models.DirectionIncome, true
	}

	return decimal.Zero, "", false
}

// documentDate returns the document date, falling back to the operation
// date and finally to the processing date.
func documentDate(document onec.Document, now time.Time) types.Date {
	if date, err := types.ParseStatementDate(document.Field(onec.FieldDocumentDate)); err == nil {
		return date
	}

	if date, err := types.ParseStatementDate(document.Field(onec.FieldOperationDate)); err == nil {
		return date
	}

	return types.DateOf(now)
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxDescriptionRunes {
		return s
	}

	return string(runes[:maxDescriptionRunes]) + "…"
}
