package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// TrainingAdMarker flags listings that sell courses instead of jobs; the
// assembler drops the whole record when the title carries it.
const TrainingAdMarker = "培训广告"

// crossPostingPhrases mark text lifted from a recommendation block that
// survived stripping.
var crossPostingPhrases = []string{"您可能感兴趣", "推荐职位"}

const wechatNoise = "微信扫一扫快速求职"

var titleSelectors = []string{
	".pos_title", ".job-title", ".job_title", ".title", "h1", ".name",
	"[class*='title']:not([class*='recommend']):not([class*='similar'])",
	"[class*='name']:not([class*='recommend']):not([class*='similar'])",
}

// Title returns the posting title, skipping cross-posted recommendation text.
func Title(d *Document) string {
	return selectorText(titleSelectors, func(v string) bool {
		return !containsAny(v, crossPostingPhrases)
	})(d)
}

var companySelectors = []string{
	".baseInfo_link a", ".baseInfo_link", ".company-name", ".company_name",
	".company", ".corp-name", "h1 + .company", ".job-company", ".employer-name",
	"[class*='company']:not([class*='recommend']):not([class*='similar'])",
}

var companyNameFallbacks = []*regexp.Regexp{
	regexp.MustCompile(`(` + han + `{2,20}公司)`),
	regexp.MustCompile(`([A-Za-z\s]{2,30}(?:公司|Company))`),
}

func acceptCompanyName(v string) bool {
	n := utf8.RuneCountInString(v)
	return strings.Contains(v, "公司") &&
		n >= 3 && n <= 20 &&
		!strings.HasPrefix(v, wechatNoise) &&
		!containsAny(v, crossPostingPhrases)
}

// Company returns the employer name and, when the matched element is an
// anchor, the absolutized link to the employer page.
func Company(d *Document) (name, link string) {
	for _, sel := range companySelectors {
		d.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			v := strings.TrimSpace(s.Text())
			if v == "" || !acceptCompanyName(v) {
				return true
			}
			name = v
			if goquery.NodeName(s) == "a" {
				if href, ok := s.Attr("href"); ok {
					link = AbsoluteCompanyURL(href)
				}
			}
			return false
		})
		if name != "" {
			return name, link
		}
	}
	window := d.TextPrefix(50)
	for _, re := range companyNameFallbacks {
		if m := re.FindStringSubmatch(window); m != nil {
			v := strings.TrimSpace(m[1])
			if acceptCompanyName(v) {
				return v, ""
			}
		}
	}
	return "", ""
}

// AbsoluteCompanyURL turns a relative or protocol-relative employer link into
// an absolute one.
func AbsoluteCompanyURL(href string) string {
	href = strings.TrimSpace(href)
	switch {
	case href == "":
		return ""
	case strings.HasPrefix(href, "//"):
		return "https:" + href
	case strings.HasPrefix(href, "http"):
		return href
	default:
		return "https://58.com" + href
	}
}

var salaryRangeRe = regexp.MustCompile(`(\d+)-(\d+)`)

var salaryFallbacks = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)[-~](\d+)元/月`),
	regexp.MustCompile(`(\d+)[-~](\d+)万/年`),
	regexp.MustCompile(`(\d+)[-~](\d+)千/月`),
	regexp.MustCompile(`薪资.*?(\d+)[-~](\d+)`),
	regexp.MustCompile(`工资.*?(\d+)[-~](\d+)`),
}

// Salary returns the numeric bounds of the advertised range; both are empty
// when the posting says negotiable.
func Salary(d *Document) (from, to string) {
	if v := strings.TrimSpace(d.Find(".pos_salary").First().Text()); v != "" {
		if m := salaryRangeRe.FindStringSubmatch(v); m != nil {
			return m[1], m[2]
		}
	}
	window := d.TextPrefix(30)
	for _, re := range salaryFallbacks {
		if m := re.FindStringSubmatch(window); m != nil {
			return m[1], m[2]
		}
	}
	return "", ""
}

var locationFallbacks = []*regexp.Regexp{
	regexp.MustCompile(`(北京|上海|广州|深圳)市?(` + han + `{2,4}区)`),
	regexp.MustCompile(`(` + han + `{2,4})市(` + han + `{2,4}区)`),
}

// Location returns "city - district" from the breadcrumb items, or a
// best-effort pair scraped from the page text.
func Location(d *Document) string {
	var parts []string
	d.Find(".pos_area_item").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v := strings.TrimSpace(s.Text()); v != "" {
			parts = append(parts, v)
		}
		return len(parts) < 2
	})
	if len(parts) > 0 {
		return strings.Join(parts, " - ")
	}
	for _, re := range locationFallbacks {
		if m := re.FindStringSubmatch(d.Text()); m != nil {
			city := strings.TrimSuffix(m[1], "市")
			return city + " - " + m[2]
		}
	}
	return ""
}

const eduLevels = `博士|硕士|研究生|本科|大专|专科|高中|中专|初中`

var eduKeywords = []string{"博士", "硕士", "研究生", "本科", "大专", "专科", "高中", "中专", "初中", "学历不限"}

// lowEduLevels collapse to 学历不限: postings below 大专 are treated as open.
var lowEduLevels = []string{"初中", "中专", "高中"}

var eduFallbacks = []*regexp.Regexp{
	regexp.MustCompile(`学历要求.*?(` + eduLevels + `|不限)`),
	regexp.MustCompile(`学历.*?(` + eduLevels + `|不限)`),
	regexp.MustCompile(`(博士|硕士|研究生|本科|大专|专科)以上`),
	regexp.MustCompile(`要求.*?(` + eduLevels + `)`),
}

// Education returns the required education level.
func Education(d *Document) string {
	var found string
	d.Find(".item_condition").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		v := strings.TrimSpace(s.Text())
		if v == "" || !containsAny(v, eduKeywords) {
			return true
		}
		found = v
		return false
	})
	if found != "" {
		if containsAny(found, lowEduLevels) {
			return "学历不限"
		}
		return found
	}
	window := d.TextPrefix(50)
	for _, re := range eduFallbacks {
		if m := re.FindStringSubmatch(window); m != nil {
			v := m[1]
			if containsAny(v, lowEduLevels) || v == "不限" {
				return "学历不限"
			}
			return v
		}
	}
	return ""
}

var experienceKeywords = []string{"经验", "年", "应届", "不限"}

var experienceFallbacks = []*regexp.Regexp{
	regexp.MustCompile(`经验.*?(\d+)[-~](\d+)年`),
	regexp.MustCompile(`(\d+)[-~](\d+)年.*?经验`),
	regexp.MustCompile(`(\d+)年以上.*?经验`),
	regexp.MustCompile(`经验.*?(\d+)年以上`),
	regexp.MustCompile(`(应届生|应届毕业生|经验不限|无经验)`),
}

// Experience returns the experience requirement phrase.
func Experience(d *Document) string {
	var found string
	d.Find(".item_condition").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		v := strings.TrimSpace(s.Text())
		if v == "" || !containsAny(v, experienceKeywords) {
			return true
		}
		if strings.Contains(v, "学历") || strings.Contains(v, "招") {
			return true
		}
		found = v
		return false
	})
	if found != "" {
		return found
	}
	window := d.TextPrefix(50)
	for _, re := range experienceFallbacks {
		m := re.FindStringSubmatch(window)
		if m == nil {
			continue
		}
		if len(m) >= 3 && m[2] != "" {
			return m[1] + "-" + m[2] + "年经验"
		}
		return m[1]
	}
	return ""
}

var firstIntRe = regexp.MustCompile(`\d+`)

var headcountFallbacks = []*regexp.Regexp{
	regexp.MustCompile(`招聘.*?(\d+)人`),
	regexp.MustCompile(`招.*?(\d+)人`),
	regexp.MustCompile(`(\d+)人`),
}

// Headcount returns the number of openings, defaulting to 1.
func Headcount(d *Document) int {
	var found string
	d.Find(".item_condition").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		v := strings.TrimSpace(s.Text())
		if v == "" || !strings.Contains(v, "招") || !strings.Contains(v, "人") {
			return true
		}
		found = firstIntRe.FindString(v)
		return found == ""
	})
	if found == "" {
		found = prefixRegex(40, headcountFallbacks)(d)
	}
	if n, err := strconv.Atoi(found); err == nil && n > 0 {
		return n
	}
	return 1
}

var postDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`发布时间.*?(\d{4}-\d{2}-\d{2})`),
	regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
	regexp.MustCompile(`(\d{2}-\d{2})`),
	regexp.MustCompile(`(今天|昨天|前天)`),
	regexp.MustCompile(`(\d+)小时前`),
	regexp.MustCompile(`(\d+)天前`),
}

// PostDate returns the posting date as printed on the page, absolute or
// relative.
func PostDate(d *Document) string {
	return fullRegex(postDatePatterns)(d)
}

var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`联系电话.*?(1[3-9]\d{9})`),
	regexp.MustCompile(`电话.*?(1[3-9]\d{9})`),
	regexp.MustCompile(`手机.*?(1[3-9]\d{9})`),
	regexp.MustCompile(`(1[3-9]\d{9})`),
}

// ContactPhone returns the first mobile number on the page.
func ContactPhone(d *Document) string {
	return fullRegex(phonePatterns)(d)
}

var emailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`邮箱.*?([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`),
	regexp.MustCompile(`([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`),
}

// ContactEmail returns the first email address on the page.
func ContactEmail(d *Document) string {
	return fullRegex(emailPatterns)(d)
}

var officeAddressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)办公地址[：:]?\s*(` + han + `+市` + han + `+区.*?)(?:联系|电话|邮箱|$)`),
	regexp.MustCompile(`(?s)公司地址[：:]?\s*(` + han + `+市` + han + `+区.*?)(?:联系|电话|邮箱|$)`),
	regexp.MustCompile(`(?s)地址[：:]?\s*(` + han + `+市` + han + `+区.*?)(?:联系|电话|邮箱|$)`),
}

// OfficeAddress returns the office address advertised on the posting.
func OfficeAddress(d *Document) string {
	v := fullRegex(officeAddressPatterns)(d)
	return truncateRunes(collapseSpace(v), 100)
}
