package v1

import (
	"github.com/google/uuid"
	"github.com/orbita-crm/backend/internal/models"
	"github.com/orbita-crm/backend/internal/types"
	ez_uuid "github.com/orbita-crm/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters of a
// transaction.
type TransactionEditable struct {
	Date         types.Date                  `json:"date" example:"2024-01-05"`
	Amount       decimal.Decimal             `json:"amount" example:"1500.50"` // Always positive, the direction carries the sign
	Direction    models.TransactionDirection `json:"direction" example:"INCOME" default:"INCOME"`
	Category     string                      `json:"category" example:"Клиенты" default:""`
	AccountID    uuid.UUID                   `json:"accountId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Counterparty string                      `json:"counterparty" example:"ТОО Ромашка" default:""`
	Description  string                      `json:"description" example:"Оплата по договору 42" default:""`
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:         editable.Date,
		Amount:       editable.Amount,
		Direction:    editable.Direction,
		Category:     editable.Category,
		AccountID:    editable.AccountID,
		Counterparty: editable.Counterparty,
		Description:  editable.Description,
	}
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Imported bool `json:"imported" example:"false"` // true when the transaction was created by the statement import engine
}

func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:         model.Date,
			Amount:       model.Amount,
			Direction:    model.Direction,
			Category:     model.Category,
			AccountID:    model.AccountID,
			Counterparty: model.Counterparty,
			Description:  model.Description,
		},
		Imported: model.Imported,
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of Transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Data  []TransactionResponse `json:"data"`                                                          // List of the created Transactions or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the Transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	AccountID    ez_uuid.UUID                `form:"account"`                        // By ID of the Account
	Direction    models.TransactionDirection `form:"direction"`                      // By direction
	Category     string                      `form:"category"`                       // By category
	Counterparty string                      `form:"counterparty" filterField:"false"` // By counterparty
	Imported     bool                        `form:"imported"`                       // Only imported or only manual transactions
	Offset       uint                        `form:"offset" filterField:"false"`     // The offset of the first Transaction returned. Defaults to 0.
	Limit        int                         `form:"limit" filterField:"false"`      // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		AccountID: f.AccountID.UUID,
		Direction: f.Direction,
		Category:  f.Category,
		Imported:  f.Imported,
	}
}
