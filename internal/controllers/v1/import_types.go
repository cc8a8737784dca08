package v1

import (
	"github.com/google/uuid"
	"github.com/orbita-crm/backend/internal/importer"
	"github.com/shopspring/decimal"
)

// ImportOutcome is the report presented to the user after a completed
// statement import.
type ImportOutcome struct {
	importer.Outcome
	Discrepancy bool    `json:"discrepancy"` // true when the file's stated closing balance disagrees with the system balance
	Account     Account `json:"account"`     // The account the statement was imported for
}

func newImportOutcome(outcome importer.Outcome, account Account) ImportOutcome {
	return ImportOutcome{
		Outcome:     outcome,
		Discrepancy: outcome.Discrepancy(),
		Account:     account,
	}
}

type ImportOutcomeResponse struct {
	Data  *ImportOutcome `json:"data"`                                                        // The import report
	Error *string        `json:"error" example:"the file you uploaded is not a bank statement"` // The error, if any occurred

	// UnknownAccount is set together with HTTP 409 when the statement's
	// account number matches no known account. Nothing has been imported
	// in that case.
	UnknownAccount *importer.UnknownAccountSignal `json:"unknownAccount,omitempty"`
}

// ApplyStatedBalanceEditable is the request to force-set an account
// balance to the closing balance stated by an imported file.
type ApplyStatedBalanceEditable struct {
	AccountID            uuid.UUID           `json:"accountId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	StatedClosingBalance decimal.NullDecimal `json:"statedClosingBalance" example:"51000.50"`
}
