package v1

import (
	"errors"

	"github.com/google/uuid"
	"github.com/orbita-crm/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// first loads the resource with the ID passed in and translates the
// database error for missing records into the resource error.
func first(db *gorm.DB, dest any, id uuid.UUID) error {
	err := db.First(dest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrResourceNotFound
	}

	return err
}

// adjustBalance moves the account balance by delta. It reads its own
// writes, so it can be called multiple times for the same account within
// one database transaction.
func adjustBalance(tx *gorm.DB, accountID uuid.UUID, delta decimal.Decimal) error {
	var account models.Account
	if err := first(tx, &account, accountID); err != nil {
		return err
	}

	return tx.Model(&account).Update("balance", account.Balance.Add(delta)).Error
}
