package importer

import (
	"errors"
	"io"
	"time"

	"github.com/orbita-crm/backend/internal/importer/parser/onec"
	"github.com/orbita-crm/backend/internal/models"
	"gorm.io/gorm"
)

// Run imports one statement file against the known accounts.
//
// When the statement's account number matches no known account, the
// returned signal is non-nil and nothing is committed; the caller is
// expected to either abandon the import or confirm the account creation
// and call RunConfirmed.
func Run(db *gorm.DB, r io.Reader, now time.Time) (Outcome, *UnknownAccountSignal, error) {
	statement, err := onec.Parse(r)
	if err != nil {
		statementImports.WithLabelValues(resultParseFailed).Inc()
		return Outcome{}, nil, err
	}

	account, signal, err := ResolveAccount(db, statement)
	if err != nil {
		return Outcome{}, nil, err
	}

	if signal != nil {
		statementImports.WithLabelValues(resultUnknownAccount).Inc()
		return Outcome{}, signal, nil
	}

	outcome, err := runForAccount(db, statement, account, now)
	return outcome, nil, err
}

// RunConfirmed imports one statement file, creating the account from the
// statement's header when it is unknown. It is the re-entry point after
// the caller confirmed an UnknownAccountSignal.
func RunConfirmed(db *gorm.DB, r io.Reader, accountName string, now time.Time) (Outcome, error) {
	statement, err := onec.Parse(r)
	if err != nil {
		statementImports.WithLabelValues(resultParseFailed).Inc()
		return Outcome{}, err
	}

	account, signal, err := ResolveAccount(db, statement)
	if err != nil {
		return Outcome{}, err
	}

	if signal != nil {
		account, err = CreateAccountFromSignal(db, *signal, accountName)
		if err != nil {
			return Outcome{}, err
		}
	}

	return runForAccount(db, statement, account, now)
}

// CreateAccountFromSignal creates the bank account described by an
// unknown account signal. The inferred bank name is used when the caller
// does not choose a name.
func CreateAccountFromSignal(db *gorm.DB, signal UnknownAccountSignal, name string) (models.Account, error) {
	if name == "" {
		name = signal.BankName
	}

	account := models.Account{
		Name:           name,
		Type:           models.AccountTypeBank,
		Balance:        signal.OpeningBalance,
		ExternalNumber: signal.AccountNumber,
	}

	err := db.Create(&account).Error
	return account, err
}

// ApplyStatedClosingBalance force-sets the account balance to the
// closing balance stated by the imported file. This is the only path
// where the file's stated figure overrides the transaction-derived
// balance, and it only happens on explicit caller action.
func ApplyStatedClosingBalance(db *gorm.DB, outcome Outcome) (models.Account, error) {
	if !outcome.StatedClosingBalance.Valid {
		return models.Account{}, ErrNoStatedClosingBalance
	}

	var account models.Account
	err := db.First(&account, "id = ?", outcome.AccountID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Account{}, models.ErrResourceNotFound
	}
	if err != nil {
		return models.Account{}, err
	}

	err = db.Model(&account).Update("balance", outcome.StatedClosingBalance.Decimal).Error
	if err != nil {
		return models.Account{}, err
	}

	account.Balance = outcome.StatedClosingBalance.Decimal
	return account, nil
}

// runForAccount performs extraction, deduplication and reconciliation
// for a resolved account and commits the result.
//
// The ledger and the balance are only written inside the final database
// transaction, after all steps completed: a failure can never leave a
// partially imported statement behind.
func runForAccount(db *gorm.DB, statement onec.Statement, account models.Account, now time.Time) (Outcome, error) {
	rules, err := models.CategoryRules(db)
	if err != nil {
		return Outcome{}, err
	}

	candidates := make([]models.Transaction, 0, len(statement.Documents))
	for _, document := range statement.Documents {
		transaction, ok := ExtractTransaction(document, account.ID, account.ExternalNumber, now)
		if !ok {
			continue
		}

		if category, ok := models.CategoryFor(rules, transaction.Counterparty); ok {
			transaction.Category = category
		}

		candidates = append(candidates, transaction)
	}

	if len(candidates) == 0 {
		statementImports.WithLabelValues(resultEmpty).Inc()
		return Outcome{}, ErrNoAttributableTransactions
	}

	existing, err := account.Transactions(db)
	if err != nil {
		return Outcome{}, err
	}

	fresh, duplicates := FilterDuplicates(candidates, existing)
	reconciliation := Reconcile(fresh, account.Balance, existing)

	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range fresh {
			if err := tx.Create(&fresh[i]).Error; err != nil {
				return err
			}
		}

		if !reconciliation.SkippedBalanceUpdate {
			return tx.Model(&account).Update("balance", reconciliation.ProjectedBalance).Error
		}

		return nil
	})
	if err != nil {
		return Outcome{}, err
	}

	statementImports.WithLabelValues(resultImported).Inc()
	transactionsAdded.Add(float64(len(fresh)))
	transactionsDuplicate.Add(float64(duplicates))

	return Outcome{
		AccountID:            account.ID,
		Added:                len(fresh),
		Duplicates:           duplicates,
		StatedClosingBalance: statement.Account.ClosingBalance,
		ProjectedBalance:     reconciliation.ProjectedBalance,
		SkippedBalanceUpdate: reconciliation.SkippedBalanceUpdate,
	}, nil
}
