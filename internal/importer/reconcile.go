package importer

import (
	"github.com/orbita-crm/backend/internal/models"
	"github.com/orbita-crm/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Reconciliation is the balance decision for one import.
type Reconciliation struct {
	Delta                decimal.Decimal // Sum of the surviving candidates, income positive, expense negative
	ProjectedBalance     decimal.Decimal // Balance the account will have after the import
	SkippedBalanceUpdate bool            // true when the statement was older than the ledger
}

// Reconcile computes the balance delta of the surviving candidates and
// decides whether to apply it to the account.
//
// The balance is left untouched when the newest candidate date is
// strictly before the newest date already on the ledger: statements can
// be imported out of chronological order (backfilling January after
// March is already recorded), and trusting an older file would silently
// erase more recent activity. The comparison is strictly before, not
// before-or-equal: a statement whose newest date equals the ledger's
// newest date updates the balance.
func Reconcile(candidates []models.Transaction, currentBalance decimal.Decimal, existing []models.Transaction) Reconciliation {
	delta := decimal.Zero
	for _, candidate := range candidates {
		delta = delta.Add(candidate.Signed())
	}

	fileMaxDate := maxDate(candidates)
	systemMaxDate := maxDate(existing)

	if fileMaxDate.Before(systemMaxDate) {
		return Reconciliation{
			Delta:                delta,
			ProjectedBalance:     currentBalance,
			SkippedBalanceUpdate: true,
		}
	}

	return Reconciliation{
		Delta:            delta,
		ProjectedBalance: currentBalance.Add(delta),
	}
}

// maxDate returns the latest date of the transactions, or the zero date
// when there are none.
func maxDate(transactions []models.Transaction) types.Date {
	var latest types.Date
	for _, transaction := range transactions {
		if transaction.Date.After(latest) {
			latest = transaction.Date
		}
	}

	return latest
}
