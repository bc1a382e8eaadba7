package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var digitsRe = regexp.MustCompile(`\d+`)

// Scale maps a raw headcount phrase ("10-49人", "50人以上", "15000") onto the
// canonical bracket labels. For a range the upper bound decides the bracket.
// Text with no usable number passes through unchanged, so bracket labels are
// fixed points.
func Scale(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	nums := digitsRe.FindAllString(s, -1)
	if len(nums) == 0 {
		return s
	}
	pick := nums[0]
	if len(nums) >= 2 {
		pick = nums[1]
	}
	n, err := strconv.Atoi(pick)
	if err != nil {
		return s
	}
	for _, b := range scaleBrackets {
		if n <= b.max {
			return b.label
		}
	}
	return scaleTopBracket
}
