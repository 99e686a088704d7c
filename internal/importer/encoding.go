package importer

import (
	"strings"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// Header tokens every recognized transaction export contains, regardless
// of provider.
const (
	tokenTime   = "交易时间"
	tokenAmount = "金额"
)

// decodeText decodes upload bytes into text by content-sniffing the
// encoding. GBK is probed before UTF-8 since it is the common case for
// Alipay exports and valid GBK often decodes as plausible-looking UTF-8.
//
// A decoding is accepted when it contains both header tokens. When neither
// decoding does, the payload is not a text export and ok is false; the
// caller routes it to spreadsheet handling instead.
func decodeText(data []byte) (content string, ok bool) {
	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
	if err == nil {
		if s := string(decoded); looksLikeExport(s) {
			return s, true
		}
	}

	if s := string(data); looksLikeExport(s) {
		return s, true
	}

	return "", false
}

func looksLikeExport(s string) bool {
	return strings.Contains(s, tokenTime) && strings.Contains(s, tokenAmount)
}
