package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no resource for the ID you specified")

	ErrAccountNameNotUnique         = errors.New("the account name must be unique")
	ErrAccountNumberNotUnique       = errors.New("the external account number must be unique")
	ErrAccountNumberMissing         = errors.New("bank accounts and sub-accounts must have an external account number")
	ErrAccountParentMissing         = errors.New("sub-accounts must reference a parent account")
	ErrAccountParentNotAllowed      = errors.New("only sub-accounts can reference a parent account")
	ErrAccountTypeInvalid           = errors.New("the account type must be one of CASH, BANK, SUB_ACCOUNT")
	ErrTransactionAmountNotPositive = errors.New("the transaction amount must be positive")
	ErrTransactionDirectionInvalid  = errors.New("the transaction direction must be INCOME or EXPENSE")
)
