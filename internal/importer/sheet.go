package importer

import (
	"strings"

	"golang.org/x/exp/slices"
)

// sheetRoles maps semantic column roles to their indices in the header
// row. An index of -1 means the role was not found.
type sheetRoles struct {
	time      int
	direction int
	amount    int
	category  int
	account   int
	note      int
}

// discoverRoles locates column roles by header cell text. Role discovery
// is content-addressed, never index-addressed, because provider exports
// reorder columns across versions.
func discoverRoles(header []string) sheetRoles {
	find := func(tokens ...string) int {
		return slices.IndexFunc(header, func(cell string) bool {
			for _, token := range tokens {
				if strings.Contains(cell, token) {
					return true
				}
			}
			return false
		})
	}

	return sheetRoles{
		time:      find(tokenTime),
		direction: find("收/支", "收支"),
		amount:    find(tokenAmount),
		category:  find("交易类型"),
		account:   find("支付方式"),
		note:      find("商品"),
	}
}

// usable reports whether the discovered roles are sufficient to parse the
// sheet. Without an amount and a direction column the payload is handed to
// the generic parser instead.
func (r sheetRoles) usable() bool {
	return r.amount != -1 && r.direction != -1
}

// parseSheet parses the rows below the header of a WeChat spreadsheet
// export using the discovered column roles.
func parseSheet(rows [][]string, roles sheetRoles) []Record {
	var records []Record

	for _, row := range rows {
		if len(row) < 5 {
			continue
		}

		direction, ok := parseDirection(cellAt(row, roles.direction))
		if !ok {
			continue
		}

		amount, err := parseAmount(cellAt(row, roles.amount))
		if err != nil {
			continue
		}

		occurredAt, err := parseCellTime(cellAt(row, roles.time))
		if err != nil {
			continue
		}

		account := strings.TrimSpace(cellAt(row, roles.account))
		switch account {
		case "/":
			account = wechatWallet
		case "":
			account = "微信"
		default:
			account = SanitizeAccountName(account)
		}

		records = append(records, Record{
			Time:     occurredAt,
			Category: strings.TrimSpace(cellAt(row, roles.category)),
			Account:  account,
			Type:     direction,
			Amount:   amount,
			Note:     strings.TrimSpace(cellAt(row, roles.note)),
		})
	}

	return records
}

// cellAt returns the cell at index i, tolerating short rows and missing
// roles. Spreadsheet rows are jagged; no row is assumed to have uniform
// length.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}

	return row[i]
}
