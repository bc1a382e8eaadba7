package extract

import (
	"regexp"
	"strings"
)

// Section headers vary across templates, so each block is tried under several
// names. Specific headers come first: the bare 要求 pattern would otherwise
// match inside 任职要求.
var responsibilityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)岗位职责[：:]?\s*(.*?)(?:任职要求|职位要求|福利待遇|联系方式|工作地点|公司简介|$)`),
	regexp.MustCompile(`(?s)工作职责[：:]?\s*(.*?)(?:任职要求|职位要求|福利待遇|联系方式|工作地点|公司简介|$)`),
	regexp.MustCompile(`(?s)工作内容[：:]?\s*(.*?)(?:任职要求|职位要求|福利待遇|联系方式|工作地点|公司简介|$)`),
	regexp.MustCompile(`(?s)职责[：:]?\s*(.*?)(?:任职要求|职位要求|福利待遇|联系方式|工作地点|公司简介|$)`),
}

var qualificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)任职要求[：:]?\s*(.*?)(?:福利待遇|联系方式|工作地点|公司简介|$)`),
	regexp.MustCompile(`(?s)职位要求[：:]?\s*(.*?)(?:福利待遇|联系方式|工作地点|公司简介|$)`),
	regexp.MustCompile(`(?s)岗位要求[：:]?\s*(.*?)(?:福利待遇|联系方式|工作地点|公司简介|$)`),
	regexp.MustCompile(`(?s)要求[：:]?\s*(.*?)(?:福利待遇|联系方式|工作地点|公司简介|$)`),
}

const dutiesCap = 500

// Duties splits the description into responsibilities and qualifications.
// The dedicated description block is tried before the whole page; when no
// section headers exist at all, the raw description lands in qualifications
// so the record keeps the text.
func Duties(d *Document) (responsibilities, qualifications string) {
	desc := strings.TrimSpace(d.Find(".des").First().Text())

	sources := make([]string, 0, 2)
	if desc != "" {
		sources = append(sources, desc)
	}
	sources = append(sources, d.Text())

	responsibilities = firstSection(sources, responsibilityPatterns)
	qualifications = firstSection(sources, qualificationPatterns)

	if responsibilities == "" && qualifications == "" && desc != "" {
		qualifications = truncateRunes(collapseSpace(desc), dutiesCap)
	}
	return responsibilities, qualifications
}

func firstSection(sources []string, patterns []*regexp.Regexp) string {
	for _, src := range sources {
		for _, re := range patterns {
			m := re.FindStringSubmatch(src)
			if m == nil {
				continue
			}
			v := strings.TrimSpace(m[1])
			v = strings.TrimPrefix(v, "】")
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			return truncateRunes(v, dutiesCap)
		}
	}
	return ""
}
