package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// placeholderValues are what the site prints when the employer left a profile
// field blank.
var placeholderValues = []string{"企业未添加", "企业未添", "未添加", "未添"}

var companyTypePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(有限责任公司\([^)]+\))`),
	regexp.MustCompile(`(股份有限公司\([^)]+\))`),
	regexp.MustCompile(`公司类型[：:]?\s*(` + han + `+(?:\([^)]+\))?)`),
	regexp.MustCompile(`企业类型[：:]?\s*(` + han + `+(?:\([^)]+\))?)`),
	regexp.MustCompile(`(有限责任公司)`),
	regexp.MustCompile(`(股份有限公司)`),
}

// CompanyTypeRaw returns the raw legal-entity phrase from the employer page.
func CompanyTypeRaw(d *Document) string {
	return fullRegex(companyTypePatterns)(d)
}

var creditCodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`统一社会信用代码[：:]?\s*([A-Z0-9]{18})`),
	regexp.MustCompile(`社会信用代码[：:]?\s*([A-Z0-9]{18})`),
	regexp.MustCompile(`信用代码[：:]?\s*([A-Z0-9]{18})`),
	regexp.MustCompile(`([A-Z0-9]{18})`),
}

// CreditCode returns the 18-character unified social credit code.
func CreditCode(d *Document) string {
	return fullRegex(creditCodePatterns)(d)
}

var scalePatterns = []*regexp.Regexp{
	regexp.MustCompile(`员工规模[：:]?\s*(\d+-\d+人?)`),
	regexp.MustCompile(`员工规模[：:]?\s*(\d+人以上)`),
	regexp.MustCompile(`员工规模[：:]?\s*(\d+人以下)`),
	regexp.MustCompile(`员工规模[：:]?\s*(\d+人)`),
	regexp.MustCompile(`公司规模[：:]?\s*(\d+-\d+人?)`),
	regexp.MustCompile(`公司规模[：:]?\s*(\d+人以上)`),
	regexp.MustCompile(`公司规模[：:]?\s*(\d+人以下)`),
	regexp.MustCompile(`公司规模[：:]?\s*(\d+人)`),
	regexp.MustCompile(`企业规模[：:]?\s*(\d+-\d+人?)`),
	regexp.MustCompile(`企业规模[：:]?\s*(\d+人以上)`),
	regexp.MustCompile(`企业规模[：:]?\s*(\d+人以下)`),
	regexp.MustCompile(`企业规模[：:]?\s*(\d+人)`),
	regexp.MustCompile(`规模[：:]?\s*(\d+-\d+人?)`),
	regexp.MustCompile(`规模[：:]?\s*(\d+人以上)`),
	regexp.MustCompile(`规模[：:]?\s*(\d+人以下)`),
	regexp.MustCompile(`规模[：:]?\s*(\d+人)`),
}

// ScaleRaw returns the raw headcount phrase from the employer page.
func ScaleRaw(d *Document) string {
	return fullRegex(scalePatterns)(d)
}

var capitalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`注册资本[：:]?\s*([\d.]+万?)`),
	regexp.MustCompile(`注册资金[：:]?\s*([\d.]+万?)`),
	regexp.MustCompile(`资本[：:]?\s*([\d.]+万?)`),
}

// RegisteredCapital returns the registered capital in units of 万. Values
// printed without the 万 suffix above 10000 are assumed to be yuan and
// converted.
func RegisteredCapital(d *Document) string {
	v := fullRegex(capitalPatterns)(d)
	if v == "" {
		return ""
	}
	if strings.HasSuffix(v, "万") {
		return strings.TrimSuffix(v, "万")
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return v
	}
	if f > 10000 {
		return strconv.FormatFloat(f/10000, 'f', -1, 64)
	}
	return v
}

var regionRawPatterns = []*regexp.Regexp{
	regexp.MustCompile(`所属区域[：:]?\s*(` + han + `+市` + han + `+区)`),
	regexp.MustCompile(`地区[：:]?\s*(` + han + `+市` + han + `+区)`),
	regexp.MustCompile(`区域[：:]?\s*(` + han + `+市` + han + `+区)`),
	regexp.MustCompile(`总部位于(` + han + `+市` + han + `+区)`),
	regexp.MustCompile(`(?:^|\s)(` + han + `{2,4}市` + han + `{2,4}区)(?:\s|$)`),
}

// firstRegionRe trims a greedy capture that glued several addresses together
// down to the first city+district run.
var firstRegionRe = regexp.MustCompile(`^(` + han + `+?市` + han + `+?区)`)

// RegionRaw returns the raw region phrase from the employer page. Shape
// validation and the province lookup belong to the normalizer.
func RegionRaw(d *Document) string {
	v := fullRegex(regionRawPatterns)(d)
	if v == "" {
		return ""
	}
	if m := firstRegionRe.FindStringSubmatch(v); m != nil {
		return m[1]
	}
	return v
}

var contactPersonPatterns = []*regexp.Regexp{
	regexp.MustCompile(`联系人[：:]?\s*(` + han + `{2,10})`),
	regexp.MustCompile(`HR[：:]?\s*(` + han + `{2,10})`),
	regexp.MustCompile(`招聘负责人[：:]?\s*(` + han + `{2,10})`),
}

// ContactPerson returns the recruiter name from the structured detail list,
// falling back to labeled text.
func ContactPerson(d *Document) string {
	var found string
	d.Find("div.c_detail_item").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		label := strings.TrimSpace(s.Find("span").First().Text())
		if !strings.Contains(label, "联系人") {
			return true
		}
		v := strings.TrimSpace(s.Find("em").First().Text())
		if v == "" || containsAny(v, placeholderValues) {
			return true
		}
		found = v
		return false
	})
	if found != "" {
		return found
	}
	for _, re := range contactPersonPatterns {
		if m := re.FindStringSubmatch(d.Text()); m != nil {
			v := m[1]
			if !containsAny(v, placeholderValues) {
				return v
			}
		}
	}
	return ""
}

// CompanyPhone returns the employer contact number unless the profile marks
// the contact block as unfilled.
func CompanyPhone(d *Document) string {
	text := d.Text()
	if strings.Contains(text, "企业未添加") && strings.Contains(text, "联系方式") {
		return ""
	}
	return ContactPhone(d)
}

// CompanyEmail returns the employer contact email with the same placeholder
// gate as CompanyPhone.
func CompanyEmail(d *Document) string {
	text := d.Text()
	if strings.Contains(text, "企业未添加") && strings.Contains(text, "邮箱") {
		return ""
	}
	return ContactEmail(d)
}

var companyAddressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)公司地址[：:]?\s*(` + han + `+市` + han + `+区.*?)(?:出口|确定|©|$)`),
	regexp.MustCompile(`(?s)办公地址[：:]?\s*(` + han + `+市` + han + `+区.*?)(?:出口|确定|©|$)`),
	regexp.MustCompile(`(?s)地址[：:]?\s*(` + han + `+市` + han + `+区[^\n]*?)(?:出口|确定|©|$)`),
	regexp.MustCompile(`(` + han + `+市` + han + `+区` + han + `+(?:-` + han + `+)*)`),
}

// CompanyAddress returns the employer office address, de-duplicating text the
// page repeats for its map widget.
func CompanyAddress(d *Document) string {
	v := fullRegex(companyAddressPatterns)(d)
	if v == "" {
		return ""
	}
	v = collapseSpace(v)
	v = collapseRepeats(v)
	return truncateRunes(v, 100)
}

// introBoilerplate blocks filler the site injects when an employer never
// wrote a profile.
var introBoilerplate = []string{
	"企业未添加",
	"老板使用58招人神器",
	"该信息通过58招才猫app发布",
	"老板忙得连写简介的时间都没有",
	"老板使用58APP商家版发布该职位",
	"招人的诚意大到无需描述",
	"58",
}

var introFallbackRe = regexp.MustCompile(`(?s)公司简介[：:]?\s*(.*?)(?:公司相册|企业相册|公司地址|基本信息|工商信息|出口|确定|©|$)`)

// CompanyIntro returns the employer self-description. The structured
// introduction block wins; a labeled-text capture backs it up with a tighter
// cap.
func CompanyIntro(d *Document) string {
	var found string
	d.Find("div.introduction").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		title := strings.TrimSpace(s.Find("span.c_title").First().Text())
		if !strings.Contains(title, "公司简介") {
			return true
		}
		v := collapseSpace(s.Find("div.introduction_box").First().Text())
		if !acceptIntro(v) {
			return true
		}
		found = truncateRunes(v, 500)
		return false
	})
	if found != "" {
		return found
	}
	if m := introFallbackRe.FindStringSubmatch(d.Text()); m != nil {
		v := collapseSpace(m[1])
		if acceptIntro(v) {
			return truncateRunes(v, 300)
		}
	}
	return ""
}

func acceptIntro(v string) bool {
	return utf8.RuneCountInString(v) > 10 && !containsAny(v, introBoilerplate)
}

// collapseRepeats rewrites immediately repeated Chinese runs ("北京北京" or a
// doubled street name) as a single occurrence.
func collapseRepeats(s string) string {
	r := []rune(s)
	out := make([]rune, 0, len(r))
	for i := 0; i < len(r); {
		collapsed := false
		if isHan(r[i]) {
			for l := (len(r) - i) / 2; l >= 1; l-- {
				seg := r[i : i+l]
				if !allHan(seg) {
					continue
				}
				reps := 1
				for i+(reps+1)*l <= len(r) && runesEqual(r[i+reps*l:i+(reps+1)*l], seg) {
					reps++
				}
				if reps > 1 {
					out = append(out, seg...)
					i += reps * l
					collapsed = true
					break
				}
			}
		}
		if !collapsed {
			out = append(out, r[i])
			i++
		}
	}
	return string(out)
}

func isHan(r rune) bool {
	return r >= 0x4e00 && r <= 0x9fa5
}

func allHan(rs []rune) bool {
	for _, r := range rs {
		if !isHan(r) {
			return false
		}
	}
	return true
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
