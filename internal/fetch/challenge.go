package fetch

import "strings"

// challengeMarkers identify the verification interstitial in rendered HTML.
var challengeMarkers = []string{
	"访问过于频繁，本次访问做以下验证码校验",
	"验证码校验",
}

// challengeButtonPaths are the confirm-button locations tried when clearing
// the interstitial, most specific first.
var challengeButtonPaths = []string{
	`//button[contains(text(), "点击验证")]`,
	`//button[contains(text(), "验证")]`,
	`//a[contains(text(), "点击验证")]`,
	`//a[contains(text(), "验证")]`,
	`//div[contains(@class, "verify")]//button`,
	`//div[contains(@class, "captcha")]//button`,
	`//*[@id="verify-btn"]`,
	`//button[@type="submit"]`,
}

// IsChallenge reports whether html is the verification interstitial rather
// than a content page.
func IsChallenge(html string) bool {
	for _, m := range challengeMarkers {
		if strings.Contains(html, m) {
			return true
		}
	}
	return false
}
