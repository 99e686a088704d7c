package importer

import (
	"strings"
)

// parseAlipayCSV parses the data lines below the header of an Alipay text
// export.
//
// Columns: 0 time, 1 category, 2 counterparty, 4 note, 5 direction,
// 6 amount, 7 account, 8 status. Malformed rows are skipped, never fatal.
func parseAlipayCSV(lines []string) []Record {
	var records []Record

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		cols := splitFields(line)
		if len(cols) < 8 {
			continue
		}

		// Accept rows whose status is empty or reports success. Refunds,
		// closed orders and the like are rejected here.
		var status string
		if len(cols) > 8 {
			status = cols[8]
		}
		if status != "" && !strings.Contains(status, "成功") {
			continue
		}

		direction, ok := parseDirection(cols[5])
		if !ok {
			continue
		}

		amount, err := parseAmount(cols[6])
		if err != nil {
			continue
		}

		occurredAt, err := parseTimeString(cols[0])
		if err != nil {
			continue
		}

		// the item description, falling back to the counterparty
		note := cols[4]
		if note == "" {
			note = cols[2]
		}

		records = append(records, Record{
			Time:     occurredAt,
			Category: cols[1],
			Account:  SanitizeAccountName(cols[7]),
			Type:     direction,
			Amount:   amount,
			Note:     note,
		})
	}

	return records
}
