package v1

import (
	"github.com/google/uuid"
	"github.com/orbita-crm/backend/internal/models"
	ez_uuid "github.com/orbita-crm/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// AccountEditable represents all user configurable parameters of an account.
//
// The balance is deliberately not editable. It is only ever changed by
// transactions, the statement import engine or an explicit balance
// adjustment.
type AccountEditable struct {
	Name           string             `json:"name" example:"Расчетный счет Народный Банк" default:""`
	Type           models.AccountType `json:"type" example:"BANK" default:"CASH"`
	ExternalNumber string             `json:"externalNumber" example:"KZ756017131000002677" default:""` // Account number at the bank
	ParentID       *uuid.UUID         `json:"parentId"`                                                 // Set for sub-accounts only
	Note           string             `json:"note" example:"Main settlement account" default:""`
}

func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:           editable.Name,
		Type:           editable.Type,
		ExternalNumber: editable.ExternalNumber,
		ParentID:       editable.ParentID,
		Note:           editable.Note,
	}
}

type Account struct {
	models.DefaultModel
	AccountEditable
	Balance decimal.Decimal `json:"balance" example:"51000.50"` // Balance kept by the system
}

func newAccount(model models.Account) Account {
	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:           model.Name,
			Type:           model.Type,
			ExternalNumber: model.ExternalNumber,
			ParentID:       model.ParentID,
			Note:           model.Note,
		},
		Balance: model.Balance,
	}
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of Accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Data  []AccountResponse `json:"data"`                                                          // List of the created Accounts or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the Account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountQueryFilter struct {
	Name           string             `form:"name" filterField:"false"`   // By name
	Type           models.AccountType `form:"type"`                       // By type
	ExternalNumber string             `form:"externalNumber"`             // By external account number
	ParentID       ez_uuid.UUID       `form:"parent"`                     // By ID of the parent account
	Offset         uint               `form:"offset" filterField:"false"` // The offset of the first Account returned. Defaults to 0.
	Limit          int                `form:"limit" filterField:"false"`  // Maximum number of Accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	var parentID *uuid.UUID
	if f.ParentID != ez_uuid.Nil {
		parentID = &f.ParentID.UUID
	}

	return models.Account{
		Type:           f.Type,
		ExternalNumber: f.ExternalNumber,
		ParentID:       parentID,
	}
}
