package importer

import (
	"strings"

	"github.com/orbita-crm/backend/internal/models"
)

// FilterDuplicates returns the candidates that do not already exist in
// the ledger, plus the number of candidates skipped as duplicates.
//
// A candidate is a duplicate when the ledger holds a transaction on the
// same account with equal amount, equal calendar date, equal direction
// and an equal description after trimming whitespace on both sides.
// Matching is exact.
//
// Known limitation: two legitimately distinct same-day transactions with
// identical amount, direction and description are indistinguishable under
// this key, so the second one is dropped. The document number would be a
// better key but is not consistently populated in the observed exports.
func FilterDuplicates(candidates, existing []models.Transaction) (fresh []models.Transaction, duplicates int) {
	for _, candidate := range candidates {
		if isDuplicate(candidate, existing) {
			duplicates++
			continue
		}

		fresh = append(fresh, candidate)
	}

	return fresh, duplicates
}

func isDuplicate(candidate models.Transaction, existing []models.Transaction) bool {
	for _, transaction := range existing {
		if transaction.AccountID == candidate.AccountID &&
			transaction.Direction == candidate.Direction &&
			transaction.Amount.Equal(candidate.Amount) &&
			transaction.Date.Equal(candidate.Date) &&
			strings.TrimSpace(transaction.Description) == strings.TrimSpace(candidate.Description) {
			return true
		}
	}

	return false
}
