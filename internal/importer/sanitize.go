package importer

import (
	"regexp"
	"strings"
)

var (
	alipayPattern       = regexp.MustCompile(`(?i)支付宝|Alipay`)
	wechatWalletPattern = regexp.MustCompile(`微信钱包`)
	wechatPattern       = regexp.MustCompile(`(?i)微信|WeChat`)

	// last 4 digits inside parentheses or at the end,
	// e.g. 工商银行储蓄卡(7934) or 银行卡 1234
	parenLast4Pattern    = regexp.MustCompile(`\((\d{4})\)`)
	trailingLast4Pattern = regexp.MustCompile(`(\d{4})$`)

	bankBrandPattern = regexp.MustCompile(`工商银行|建设银行|招商银行|农业银行|中国银行|交通银行|民生银行|中信银行|广发银行|邮储银行`)
	cardTypePattern  = regexp.MustCompile(`储蓄卡|借记卡|信用卡`)
	digitRunPattern  = regexp.MustCompile(`\d{4,}`)
)

// SanitizeAccountName masks bank and card identifiers so that raw account
// descriptors never reach storage. Known wallets pass through unmasked.
//
// The function is pure and idempotent: masked output never contains a run
// of four or more digits outside the preserved last-4 form, so masking a
// masked name returns it unchanged.
func SanitizeAccountName(name string) string {
	raw := strings.TrimSpace(name)
	if raw == "" {
		return "现金"
	}

	// keep well-known wallets unmasked
	if alipayPattern.MatchString(raw) {
		return "支付宝"
	}
	if wechatWalletPattern.MatchString(raw) {
		return "微信钱包"
	}
	if wechatPattern.MatchString(raw) {
		return "微信"
	}

	var last4 string
	if m := parenLast4Pattern.FindStringSubmatch(raw); m != nil {
		last4 = m[1]
	} else if m := trailingLast4Pattern.FindStringSubmatch(raw); m != nil {
		last4 = m[1]
	}

	if last4 != "" {
		if brand := bankBrandPattern.FindString(raw); brand != "" {
			return brand + " ****" + last4
		}
		return "银行卡 ****" + last4
	}

	// generic card types without an extractable tail
	if cardTypePattern.MatchString(raw) {
		return "银行卡 ****"
	}

	// fallback: keep the descriptor, but never leak long digit runs
	return digitRunPattern.ReplaceAllString(raw, "****")
}
