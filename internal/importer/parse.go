package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zhangben/backend/internal/models"
)

// daysBetweenSerialBaseAndEpoch is the number of days between the
// spreadsheet date serial base (two days before 1900-01-01, the
// conventional off-by-two base) and 1970-01-01.
const daysBetweenSerialBaseAndEpoch = 25569

var amountCleaner = strings.NewReplacer("¥", "", "￥", "", ",", "")

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006/1/2 15:04:05",
	"2006-01-02 15:04",
	"2006/1/2 15:04",
	"2006-01-02",
	"2006/1/2",
}

// splitLines splits text content into lines, tolerating both \n and \r\n.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}

	return lines
}

// splitFields splits a data line on commas.
//
// Provider text exports use unquoted fields and carry preamble lines that
// are not valid CSV, so a plain split keeps malformed lines a row-level
// problem instead of aborting the whole read. Fields containing commas are
// a known limitation of the formats themselves.
func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}

	return fields
}

// parseAmount parses a monetary cell, stripping the currency symbol and
// digit group separators first.
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(amountCleaner.Replace(s)))
}

// parseDirection maps the provider direction token to a transaction type.
// Rows with any other token are dropped by the caller.
func parseDirection(s string) (models.CategoryType, bool) {
	switch strings.TrimSpace(s) {
	case "支出":
		return models.Expense, true
	case "收入":
		return models.Income, true
	}

	return "", false
}

func parseTimeString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format %q", s)
}

// parseCellTime parses a spreadsheet time cell, which is either a date
// serial or a time string.
func parseCellTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		seconds := (serial - daysBetweenSerialBaseAndEpoch) * 86400
		return time.Unix(int64(math.Round(seconds)), 0).In(time.UTC), nil
	}

	return parseTimeString(s)
}
