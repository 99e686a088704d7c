// Package importer ingests bank and wallet statement exports of unknown
// format into transactions.
//
// Uploaded files are content-sniffed, never trusted: the encoding is
// resolved by probing for known header tokens, the provider dialect is
// classified from the header line or row, and column roles in spreadsheets
// are discovered by header text instead of fixed positions, since provider
// exports reorder columns across versions.
package importer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zhangben/backend/internal/models"
)

// Dialect identifies a recognized provider export layout with its own
// column semantics and acceptance rules.
type Dialect uint8

const (
	DialectUnknown Dialect = iota
	DialectAlipayCSV
	DialectWeChatCSV
	DialectWeChatSheet
	DialectGenericSheet
)

func (d Dialect) String() string {
	switch d {
	case DialectAlipayCSV:
		return "alipay-csv"
	case DialectWeChatCSV:
		return "wechat-csv"
	case DialectWeChatSheet:
		return "wechat-sheet"
	case DialectGenericSheet:
		return "generic-sheet"
	}

	return "unknown"
}

// Record is a parsed row that has not yet been checked for duplicates or
// bound to persisted categories and accounts.
type Record struct {
	Time     time.Time
	Category string
	Account  string
	Type     models.CategoryType
	Amount   decimal.Decimal
	Note     string
}

// Summary reports the outcome of a file import.
type Summary struct {
	// TotalRows is the number of rows the matched parser produced,
	// including rows later skipped as duplicates or for invalid amounts.
	TotalRows int `json:"totalFound"`
	// Imported is the number of transactions actually created.
	Imported int `json:"count"`
	// Source is "CSV" for text exports and "Excel" for spreadsheets.
	Source string `json:"source"`
}
