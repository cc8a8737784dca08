package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType describes the kind of a financial account.
type AccountType string

const (
	AccountTypeCash       AccountType = "CASH"
	AccountTypeBank       AccountType = "BANK"
	AccountTypeSubAccount AccountType = "SUB_ACCOUNT"
)

// Account represents a financial account of the company, e.g. the cash
// desk or a bank account.
//
// The balance is only ever changed by manual transactions, a
// reconciliation adjustment or the statement import engine, never
// implicitly.
type Account struct {
	DefaultModel
	Name           string          `gorm:"uniqueIndex"`
	Type           AccountType
	Balance        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ExternalNumber string          `gorm:"index"` // Account number at the bank, set for BANK and SUB_ACCOUNT
	ParentID       *uuid.UUID      // Set for SUB_ACCOUNT only
	Parent         *Account        `json:"-"`
	Note           string
}

// BeforeSave ensures consistency for the account.
//
// It trims whitespace from all strings and verifies the type specific
// invariants.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)
	a.ExternalNumber = strings.TrimSpace(a.ExternalNumber)

	switch a.Type {
	case AccountTypeCash:
		if a.ParentID != nil {
			return ErrAccountParentNotAllowed
		}
	case AccountTypeBank:
		if a.ParentID != nil {
			return ErrAccountParentNotAllowed
		}
		if a.ExternalNumber == "" {
			return ErrAccountNumberMissing
		}
	case AccountTypeSubAccount:
		if a.ParentID == nil {
			return ErrAccountParentMissing
		}
		if a.ExternalNumber == "" {
			return ErrAccountNumberMissing
		}
	default:
		return ErrAccountTypeInvalid
	}

	return nil
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)
	return a.checkIntegrity(tx)
}

// BeforeUpdate verifies the state of the account before committing an
// update to the database.
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("Name", "ExternalNumber", "ParentID") {
		return a.checkIntegrity(tx)
	}

	return nil
}

// checkIntegrity verifies uniqueness of the name and external number and
// the reference to the parent account.
func (a *Account) checkIntegrity(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&Account{}).Where("name = ? AND id != ?", strings.TrimSpace(a.Name), a.ID).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAccountNameNotUnique
	}

	if number := strings.TrimSpace(a.ExternalNumber); number != "" {
		err = tx.Model(&Account{}).Where("external_number = ? AND id != ?", number, a.ID).Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrAccountNumberNotUnique
		}
	}

	if a.ParentID != nil {
		err = tx.First(&Account{}, "id = ?", *a.ParentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResourceNotFound
		}
		return err
	}

	return nil
}

// Transactions returns all transactions for this account.
func (a Account) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.Where(Transaction{AccountID: a.ID}).Find(&transactions).Error
	return transactions, err
}

// AccountByNumber returns the account with the external account number,
// matched exactly.
func AccountByNumber(db *gorm.DB, number string) (Account, error) {
	var account Account

	err := db.Where("external_number = ?", number).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Account{}, ErrResourceNotFound
	}

	return account, err
}
