package importer

import (
	"strings"
	"time"

	"github.com/zhangben/backend/internal/models"
)

// Placeholder labels for generic exports that omit a column entirely.
const (
	fallbackCategory = "未分类"
)

// parseGenericSheet treats the first row of the sheet as a header of named
// columns and accepts English or Chinese synonyms for each role. This is
// the fallback for tabular exports that match no provider dialect.
//
// Amount and direction are required; rows missing either are dropped.
// Category, account and note fall back to placeholder labels.
func parseGenericSheet(rows [][]string) []Record {
	if len(rows) < 2 {
		return nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, cell := range rows[0] {
		index[strings.TrimSpace(cell)] = i
	}

	lookup := func(row []string, names ...string) string {
		for _, name := range names {
			if i, ok := index[name]; ok {
				if v := strings.TrimSpace(cellAt(row, i)); v != "" {
					return v
				}
			}
		}
		return ""
	}

	var records []Record

	for _, row := range rows[1:] {
		amountField := lookup(row, "Amount", "金额")
		directionField := lookup(row, "Type", "类型")
		if amountField == "" || directionField == "" {
			continue
		}

		amount, err := parseAmount(amountField)
		if err != nil {
			continue
		}

		direction := models.Expense
		if directionField == "收入" || directionField == "income" {
			direction = models.Income
		}

		occurredAt := time.Now().In(time.UTC)
		if timeField := lookup(row, "Time", "时间"); timeField != "" {
			if parsed, err := parseCellTime(timeField); err == nil {
				occurredAt = parsed
			}
		}

		category := lookup(row, "Category", "分类")
		if category == "" {
			category = fallbackCategory
		}

		records = append(records, Record{
			Time:     occurredAt,
			Category: category,
			Account:  SanitizeAccountName(lookup(row, "Account", "账户")),
			Type:     direction,
			Amount:   amount,
			Note:     lookup(row, "Note", "备注"),
		})
	}

	return records
}
