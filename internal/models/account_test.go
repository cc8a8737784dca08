package models_test

import (
	"github.com/orbita-crm/backend/internal/models"
	"github.com/orbita-crm/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAccountTrimsWhitespace() {
	account := suite.createTestAccount(models.Account{
		Name: "  Касса  ",
		Type: models.AccountTypeCash,
		Note: " Наличные в офисе ",
	})

	suite.Assert().Equal("Касса", account.Name)
	suite.Assert().Equal("Наличные в офисе", account.Note)
}

func (suite *TestSuiteStandard) TestAccountTypeInvariants() {
	tests := []struct {
		name    string
		account models.Account
		err     error
	}{
		{"cash account", models.Account{Name: "Касса", Type: models.AccountTypeCash}, nil},
		{"bank account", models.Account{Name: "Банк", Type: models.AccountTypeBank, ExternalNumber: "KZ001"}, nil},
		{"bank account without number", models.Account{Name: "Банк без счета", Type: models.AccountTypeBank}, models.ErrAccountNumberMissing},
		{"sub-account without parent", models.Account{Name: "Суб", Type: models.AccountTypeSubAccount, ExternalNumber: "KZ002"}, models.ErrAccountParentMissing},
		{"unknown type", models.Account{Name: "X", Type: "SAVINGS"}, models.ErrAccountTypeInvalid},
	}

	for _, tt := range tests {
		err := models.DB.Create(&tt.account).Error
		if tt.err == nil {
			suite.Assert().Nil(err, "%s: %v", tt.name, err)
		} else {
			suite.Assert().ErrorIs(err, tt.err, tt.name)
		}
	}
}

func (suite *TestSuiteStandard) TestAccountSubAccount() {
	parent := suite.createTestAccount(models.Account{Name: "Банк", Type: models.AccountTypeBank, ExternalNumber: "KZ001"})

	subAccount := models.Account{
		Name:           "Карта",
		Type:           models.AccountTypeSubAccount,
		ExternalNumber: "KZ002",
		ParentID:       &parent.ID,
	}
	suite.Assert().Nil(models.DB.Create(&subAccount).Error)

	cash := models.Account{Name: "Касса", Type: models.AccountTypeCash, ParentID: &parent.ID}
	suite.Assert().ErrorIs(models.DB.Create(&cash).Error, models.ErrAccountParentNotAllowed)
}

func (suite *TestSuiteStandard) TestAccountNameUnique() {
	suite.createTestAccount(models.Account{Name: "Касса", Type: models.AccountTypeCash})

	duplicate := models.Account{Name: "Касса", Type: models.AccountTypeCash}
	suite.Assert().ErrorIs(models.DB.Create(&duplicate).Error, models.ErrAccountNameNotUnique)
}

func (suite *TestSuiteStandard) TestAccountNumberUnique() {
	suite.createTestAccount(models.Account{Name: "Банк", Type: models.AccountTypeBank, ExternalNumber: "KZ001"})

	duplicate := models.Account{Name: "Другой банк", Type: models.AccountTypeBank, ExternalNumber: "KZ001"}
	suite.Assert().ErrorIs(models.DB.Create(&duplicate).Error, models.ErrAccountNumberNotUnique)

	// Multiple accounts without an external number are fine
	suite.createTestAccount(models.Account{Name: "Касса 1", Type: models.AccountTypeCash})
	suite.createTestAccount(models.Account{Name: "Касса 2", Type: models.AccountTypeCash})
}

func (suite *TestSuiteStandard) TestAccountByNumber() {
	account := suite.createTestAccount(models.Account{Name: "Банк", Type: models.AccountTypeBank, ExternalNumber: "KZ001"})

	found, err := models.AccountByNumber(models.DB, "KZ001")
	suite.Require().Nil(err)
	suite.Assert().Equal(account.ID, found.ID)

	// Matching is exact
	_, err = models.AccountByNumber(models.DB, "kz001")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = models.AccountByNumber(models.DB, "KZ999")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAccountTransactions() {
	account := suite.createTestAccount(models.Account{Name: "Банк", Type: models.AccountTypeBank, ExternalNumber: "KZ001"})
	other := suite.createTestAccount(models.Account{Name: "Касса", Type: models.AccountTypeCash})

	suite.createTestTransaction(models.Transaction{AccountID: account.ID, Amount: decimal.NewFromInt(10), Direction: models.DirectionIncome, Date: types.NewDate(2024, 1, 5)})
	suite.createTestTransaction(models.Transaction{AccountID: account.ID, Amount: decimal.NewFromInt(20), Direction: models.DirectionExpense, Date: types.NewDate(2024, 1, 6)})
	suite.createTestTransaction(models.Transaction{AccountID: other.ID, Amount: decimal.NewFromInt(30), Direction: models.DirectionIncome, Date: types.NewDate(2024, 1, 7)})

	transactions, err := account.Transactions(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(transactions, 2)
}
