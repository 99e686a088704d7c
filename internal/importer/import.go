package importer

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/zhangben/backend/internal/models"
)

// Import ingests a statement export file for the given user.
//
// The payload is decoded and classified, parsed by the matched dialect,
// and every record is resolved against the user's categories and accounts
// (created on demand) before being checked for duplicates and persisted.
// Rows are processed strictly in input order so that later rows observe
// the categories and accounts created by earlier ones.
//
// Row-level problems are skipped. Only a missing payload, an unreadable
// spreadsheet container and persistence failures are fatal; rows committed
// before a persistence failure stay committed.
func Import(db *gorm.DB, file []byte, userID uint) (Summary, error) {
	if len(file) == 0 {
		return Summary{}, ErrNoFile
	}

	var records []Record
	var dialect Dialect
	source := "CSV"

	if content, ok := decodeText(file); ok {
		dialect, records = parseText(content)
	} else {
		source = "Excel"

		rows, err := readWorkbook(file)
		if err != nil {
			return Summary{}, err
		}

		dialect, records = parseWorkbook(rows)
	}

	log.Debug().Str("source", source).Stringer("dialect", dialect).Int("rows", len(records)).Msg("import parsed")

	summary := Summary{
		TotalRows: len(records),
		Source:    source,
	}

	for _, record := range records {
		// Zero and negative amounts never become transactions, but they
		// still count as candidate rows.
		if !record.Amount.IsPositive() {
			continue
		}

		category, err := models.CategoryForName(db, userID, record.Category, record.Type)
		if err != nil {
			return Summary{}, err
		}

		account, err := models.AccountForName(db, userID, record.Account)
		if err != nil {
			return Summary{}, err
		}

		_, found, err := models.FindDuplicate(db, userID, record.Amount, record.Time, account.ID, record.Note)
		if err != nil {
			return Summary{}, err
		}
		if found {
			continue
		}

		transaction := models.Transaction{
			Amount:     record.Amount,
			Type:       record.Type,
			Time:       record.Time,
			Note:       record.Note,
			CategoryID: category.ID,
			AccountID:  account.ID,
			UserID:     userID,
		}
		if err := db.Create(&transaction).Error; err != nil {
			return Summary{}, err
		}

		summary.Imported++
	}

	return summary, nil
}

// parseText classifies decoded text content and dispatches to the matched
// text dialect. An unrecognized payload parses to zero rows, not an error.
func parseText(content string) (Dialect, []Record) {
	lines := splitLines(content)

	dialect, headerIndex := classifyText(lines)
	if headerIndex == -1 {
		return DialectUnknown, nil
	}

	body := lines[headerIndex+1:]

	switch dialect {
	case DialectAlipayCSV:
		return dialect, parseAlipayCSV(body)
	case DialectWeChatCSV:
		return dialect, parseWeChatCSV(body)
	}

	return DialectUnknown, nil
}

// readWorkbook opens the payload as a spreadsheet and returns the raw cell
// values of the first sheet. Raw values keep date serials numeric instead
// of rendering them through the cell format.
func readWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrWorkbook
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrWorkbook, err)
	}

	return rows, nil
}

// parseWorkbook locates the header row and dispatches to the provider
// sheet parser. When no header row is found, or the header row yields no
// usable amount and direction columns, the sheet is retried as a generic
// named-column export.
func parseWorkbook(rows [][]string) (Dialect, []Record) {
	if headerIndex := findSheetHeader(rows); headerIndex != -1 {
		if roles := discoverRoles(rows[headerIndex]); roles.usable() {
			return DialectWeChatSheet, parseSheet(rows[headerIndex+1:], roles)
		}
	}

	return DialectGenericSheet, parseGenericSheet(rows)
}
