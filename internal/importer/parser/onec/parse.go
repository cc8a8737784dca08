package onec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
)

// ErrUnrecognizedFormat is returned when no account number can be found
// anywhere in the file. It is the only fatal parse failure: files with a
// recognizable account number and no valid documents still parse.
var ErrUnrecognizedFormat = errors.New("statement format unrecognized: no account number found in the file")

// Section markers, lowercased. A line opens or closes a section when its
// content starts with the marker.
const (
	markerAccountOpen   = "секциярасчсчет"
	markerAccountClose  = "конецрасчсчет"
	markerDocumentOpen  = "секциядокумент"
	markerDocumentClose = "конецдокумента"
)

// section is the tokenizer state: outside any section, inside the
// account header section or inside a document section.
type section int

const (
	sectionNone section = iota
	sectionAccount
	sectionDocument
)

// Parse reads a statement file and returns the account header and the
// ordered list of document sections.
//
// The accounting system exports in Windows-1251; input that is not valid
// UTF-8 is transcoded before tokenizing.
func Parse(r io.Reader) (Statement, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Statement{}, fmt.Errorf("could not read statement: %w", err)
	}

	if !utf8.Valid(raw) {
		decoded, err := charmap.Windows1251.NewDecoder().Bytes(raw)
		if err != nil {
			return Statement{}, fmt.Errorf("could not transcode statement: %w", err)
		}
		raw = decoded
	}

	var (
		statement      Statement
		fallbackNumber string
		state          = sectionNone
		document       Document
	)

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch lower := strings.ToLower(line); {
		case strings.HasPrefix(lower, markerAccountOpen):
			state = sectionAccount
			continue
		case strings.HasPrefix(lower, markerAccountClose):
			state = sectionNone
			continue
		case strings.HasPrefix(lower, markerDocumentOpen):
			state = sectionDocument
			document = Document{}
			continue
		case strings.HasPrefix(lower, markerDocumentClose):
			if state == sectionDocument {
				statement.Documents = append(statement.Documents, document)
				document = nil
			}
			state = sectionNone
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			// Lines without a separator carry no data
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch state {
		case sectionAccount:
			statement.Account.apply(key, value)
		case sectionDocument:
			document[key] = value
		default:
			// A bare account number outside any section is kept as a
			// fallback in case no section states one
			if key == FieldAccountNumber && fallbackNumber == "" {
				fallbackNumber = value
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return Statement{}, fmt.Errorf("could not read statement: %w", err)
	}

	if statement.Account.Number == "" {
		statement.Account.Number = fallbackNumber
	}

	if statement.Account.Number == "" {
		return Statement{}, ErrUnrecognizedFormat
	}

	return statement, nil
}

// apply sets an account header field from a key/value pair. Unknown keys
// and unparseable balances are ignored.
func (info *AccountInfo) apply(key, value string) {
	switch key {
	case FieldAccountNumber:
		if info.Number == "" {
			info.Number = value
		}
	case FieldOpeningBalance:
		if amount, err := ParseAmount(value); err == nil {
			info.OpeningBalance = amount
		}
	case FieldClosingBalance:
		if amount, err := ParseAmount(value); err == nil {
			info.ClosingBalance = decimal.NullDecimal{Decimal: amount, Valid: true}
		}
	}
}

// ParseAmount parses an amount as exported by the accounting system.
// Group separators (spaces) are dropped and a decimal comma is accepted
// next to the decimal point.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.NewReplacer(" ", "", "\u00a0", "", ",", ".").Replace(strings.TrimSpace(s))
	if s == "" {
		return decimal.Zero, errors.New("empty amount")
	}

	return decimal.NewFromString(s)
}
