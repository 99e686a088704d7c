package importer

import (
	"strings"
)

// classifyText scans lines top to bottom for the first one containing both
// header tokens. That line is the header; everything above it is preamble.
//
// Among matching lines, provider-specific token pairs decide the dialect.
// A header without a matching pair is DialectUnknown, which imports as
// zero rows rather than failing. headerIndex is -1 when no line matches.
func classifyText(lines []string) (Dialect, int) {
	for i, line := range lines {
		if !strings.Contains(line, tokenTime) || !strings.Contains(line, tokenAmount) {
			continue
		}

		switch {
		case strings.Contains(line, "交易分类") && strings.Contains(line, "交易状态"):
			return DialectAlipayCSV, i
		case strings.Contains(line, "交易类型") && strings.Contains(line, "支付方式"):
			return DialectWeChatCSV, i
		}

		return DialectUnknown, i
	}

	return DialectUnknown, -1
}

// findSheetHeader returns the index of the first row containing cells with
// the time token and the amount token, or -1 when no row qualifies.
func findSheetHeader(rows [][]string) int {
	for i, row := range rows {
		if rowContains(row, tokenTime) && rowContains(row, tokenAmount) {
			return i
		}
	}

	return -1
}

func rowContains(row []string, token string) bool {
	for _, cell := range row {
		if strings.Contains(cell, token) {
			return true
		}
	}

	return false
}
