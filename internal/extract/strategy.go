package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// han matches one simplified-Chinese character; the field patterns are built
// from it.
const han = `[\x{4e00}-\x{9fa5}]`

// A Strategy is one attempt at a field. Each extractor runs its strategies in
// order and keeps the first non-empty result.
type Strategy func(d *Document) string

// selectorText returns the trimmed text of the first selector that matches a
// non-empty element and passes accept (accept may be nil).
func selectorText(selectors []string, accept func(string) bool) Strategy {
	return func(d *Document) string {
		for _, sel := range selectors {
			var found string
			d.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
				v := strings.TrimSpace(s.Text())
				if v == "" {
					return true
				}
				if accept != nil && !accept(v) {
					return true
				}
				found = v
				return false
			})
			if found != "" {
				return found
			}
		}
		return ""
	}
}

// prefixRegex scans the first n lines of the page text with each pattern in
// order and returns the first capture group of the first hit.
func prefixRegex(n int, patterns []*regexp.Regexp) Strategy {
	return func(d *Document) string {
		window := d.TextPrefix(n)
		for _, re := range patterns {
			if m := re.FindStringSubmatch(window); m != nil {
				return strings.TrimSpace(m[1])
			}
		}
		return ""
	}
}

// fullRegex is prefixRegex over the whole page text.
func fullRegex(patterns []*regexp.Regexp) Strategy {
	return func(d *Document) string {
		for _, re := range patterns {
			if m := re.FindStringSubmatch(d.Text()); m != nil {
				return strings.TrimSpace(m[1])
			}
		}
		return ""
	}
}

// collapseSpace folds any whitespace run into a single space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateRunes caps s at n runes.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
