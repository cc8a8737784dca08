package models_test

import (
	"github.com/orbita-crm/backend/internal/models"
	"github.com/orbita-crm/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionValidation() {
	account := suite.createTestAccount(models.Account{})

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{
			"valid income",
			models.Transaction{AccountID: account.ID, Amount: decimal.NewFromInt(10), Direction: models.DirectionIncome, Date: types.NewDate(2024, 1, 5)},
			nil,
		},
		{
			"zero amount",
			models.Transaction{AccountID: account.ID, Amount: decimal.Zero, Direction: models.DirectionIncome, Date: types.NewDate(2024, 1, 5)},
			models.ErrTransactionAmountNotPositive,
		},
		{
			"negative amount",
			models.Transaction{AccountID: account.ID, Amount: decimal.NewFromInt(-10), Direction: models.DirectionExpense, Date: types.NewDate(2024, 1, 5)},
			models.ErrTransactionAmountNotPositive,
		},
		{
			"invalid direction",
			models.Transaction{AccountID: account.ID, Amount: decimal.NewFromInt(10), Direction: "TRANSFER", Date: types.NewDate(2024, 1, 5)},
			models.ErrTransactionDirectionInvalid,
		},
	}

	for _, tt := range tests {
		err := models.DB.Create(&tt.transaction).Error
		if tt.err == nil {
			suite.Assert().Nil(err, "%s: %v", tt.name, err)
		} else {
			suite.Assert().ErrorIs(err, tt.err, tt.name)
		}
	}
}

func (suite *TestSuiteStandard) TestTransactionTrimsWhitespace() {
	account := suite.createTestAccount(models.Account{})

	transaction := suite.createTestTransaction(models.Transaction{
		AccountID:    account.ID,
		Amount:       decimal.NewFromInt(10),
		Direction:    models.DirectionIncome,
		Date:         types.NewDate(2024, 1, 5),
		Category:     " Клиенты ",
		Counterparty: " ТОО Ромашка ",
		Description:  " Оплата ",
	})

	suite.Assert().Equal("Клиенты", transaction.Category)
	suite.Assert().Equal("ТОО Ромашка", transaction.Counterparty)
	suite.Assert().Equal("Оплата", transaction.Description)
}

func (suite *TestSuiteStandard) TestTransactionSigned() {
	income := models.Transaction{Amount: decimal.NewFromInt(10), Direction: models.DirectionIncome}
	expense := models.Transaction{Amount: decimal.NewFromInt(10), Direction: models.DirectionExpense}

	suite.Assert().True(income.Signed().Equal(decimal.NewFromInt(10)))
	suite.Assert().True(expense.Signed().Equal(decimal.NewFromInt(-10)))
}

func (suite *TestSuiteStandard) TestTransactionDateRoundtrip() {
	account := suite.createTestAccount(models.Account{})
	date := types.NewDate(2024, 2, 29)

	created := suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(10),
		Direction: models.DirectionIncome,
		Date:      date,
	})

	var reloaded models.Transaction
	suite.Require().Nil(models.DB.First(&reloaded, "id = ?", created.ID).Error)
	suite.Assert().True(reloaded.Date.Equal(date), "date read back is %v, want %v", reloaded.Date, date)
}
