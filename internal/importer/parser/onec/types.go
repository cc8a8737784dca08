// Package onec parses the flat-text statement exports produced by the
// accounting system (1C client bank exchange dialect).
package onec

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Field names as they appear in statement files, lowercased.
// Matching on keys is case-insensitive.
const (
	FieldAccountNumber  = "расчсчет"
	FieldOpeningBalance = "начальныйостаток"
	FieldClosingBalance = "конечныйостаток"

	FieldIncomeAmount   = "суммаприход"
	FieldExpenseAmount  = "суммарасход"
	FieldAmount         = "сумма"
	FieldPayerName      = "плательщик"
	FieldPayerAccount   = "плательщиксчет"
	FieldPayerBank      = "плательщикбанк"
	FieldPayeeName      = "получатель"
	FieldPayeeAccount   = "получательсчет"
	FieldPayeeBank      = "получательбанк"
	FieldPurpose        = "назначениеплатежа"
	FieldDocumentDate   = "датадокумента"
	FieldOperationDate  = "датаоперации"
	FieldDocumentNumber = "номердокумента"
)

// AccountInfo is the parsed account header of a statement.
type AccountInfo struct {
	Number         string
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.NullDecimal // Not all exports state a closing balance
}

// Document is one document section of a statement: all key/value pairs
// found between the section markers, with lowercased keys.
type Document map[string]string

// Field returns the value for a field name, matched case-insensitively.
func (d Document) Field(name string) string {
	return d[strings.ToLower(name)]
}

// Statement is the parse result for one statement file.
type Statement struct {
	Account   AccountInfo
	Documents []Document
}
