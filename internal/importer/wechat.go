package importer

import (
	"strings"
)

// wechatWallet is the account label used when the export marks the payment
// method with the "/" sentinel, meaning the wallet balance itself.
const wechatWallet = "微信钱包"

// parseWeChatCSV parses the data lines below the header of a WeChat text
// export.
//
// Columns: 0 time, 1 transaction type (used as the category), 3 note,
// 4 direction, 5 amount, 6 payment method. There is no status column in
// this dialect.
func parseWeChatCSV(lines []string) []Record {
	var records []Record

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		cols := splitFields(line)
		if len(cols) < 7 {
			continue
		}

		direction, ok := parseDirection(cols[4])
		if !ok {
			continue
		}

		amount, err := parseAmount(cols[5])
		if err != nil {
			continue
		}

		occurredAt, err := parseTimeString(cols[0])
		if err != nil {
			continue
		}

		account := cols[6]
		if account == "/" {
			account = wechatWallet
		} else {
			account = SanitizeAccountName(account)
		}

		records = append(records, Record{
			Time:     occurredAt,
			Category: cols[1],
			Account:  account,
			Type:     direction,
			Amount:   amount,
			Note:     cols[3],
		})
	}

	return records
}
