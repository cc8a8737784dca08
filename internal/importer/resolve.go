package importer

import (
	"errors"

	"github.com/orbita-crm/backend/internal/importer/parser/onec"
	"github.com/orbita-crm/backend/internal/models"
	"gorm.io/gorm"
)

// FallbackBankName is used for the unknown account signal when no
// document names the bank.
const FallbackBankName = "Банковский счет"

// ResolveAccount matches the statement to a known account by its
// external account number, with an exact string match.
//
// When no account matches, a signal with the inferred bank name and the
// file's stated opening balance is returned instead; the import is
// suspended until the caller decides whether to create the account.
func ResolveAccount(db *gorm.DB, statement onec.Statement) (models.Account, *UnknownAccountSignal, error) {
	account, err := models.AccountByNumber(db, statement.Account.Number)
	if err == nil {
		return account, nil, nil
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.Account{}, nil, err
	}

	return models.Account{}, &UnknownAccountSignal{
		AccountNumber:  statement.Account.Number,
		BankName:       inferBankName(statement.Account.Number, statement.Documents),
		OpeningBalance: statement.Account.OpeningBalance,
	}, nil
}

// inferBankName scans the documents for one where the statement's own
// account number appears as payer or payee and takes the bank name
// stated for that side.
func inferBankName(number string, documents []onec.Document) string {
	for _, document := range documents {
		if document.Field(onec.FieldPayerAccount) == number {
			if bank := document.Field(onec.FieldPayerBank); bank != "" {
				return bank
			}
		}

		if document.Field(onec.FieldPayeeAccount) == number {
			if bank := document.Field(onec.FieldPayeeBank); bank != "" {
				return bank
			}
		}
	}

	return FallbackBankName
}
