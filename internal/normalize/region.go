package normalize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const han = `[\x{4e00}-\x{9fa5}]`

var (
	shapeFullRe         = regexp.MustCompile(`^(` + han + `{2,4})省(` + han + `{2,4})市(` + han + `{2,4}区)$`)
	shapeProvCityRe     = regexp.MustCompile(`^` + han + `{2,4}省` + han + `{2,4}市$`)
	shapeCityRe         = regexp.MustCompile(`^` + han + `{2,4}市$`)
	shapeCityDistrictRe = regexp.MustCompile(`^(` + han + `{2,4})市(` + han + `{2,4}区)$`)

	municipalityRe     = regexp.MustCompile(`^(北京|上海|天津|重庆)市?(` + han + `{2,4}区)$`)
	bareCityDistrictRe = regexp.MustCompile(`^(` + han + `{2,4})(` + han + `{2,4}区)$`)

	// looseRe pulls an embedded region with optional 省/市 markers out of
	// longer prose, e.g. "公司位于浙江杭州西湖区写字楼".
	looseRe = regexp.MustCompile(`(` + han + `{2,4})(省)?(` + han + `{2,4})(市)?(` + han + `{2,4}区)`)

	fallbackProvRe = regexp.MustCompile(`(` + han + `+)省(` + han + `+)市` + han + `*区?`)
	fallbackCityRe = regexp.MustCompile(han + `+市` + han + `+区`)

	canonicalShapes = []*regexp.Regexp{
		regexp.MustCompile(`^` + han + `{2,4}省` + han + `{2,4}市$`),
		regexp.MustCompile(`^` + han + `{2,4}市$`),
		regexp.MustCompile(`^` + han + `{2,4}市` + han + `{2,4}区$`),
		regexp.MustCompile(`^` + han + `{2,4}省` + han + `{2,4}市` + han + `{2,4}区$`),
	}
)

// IsCanonical reports whether s already has one of the four accepted region
// shapes: 省+市, 市, 市+区, or 省+市+区.
func IsCanonical(s string) bool {
	for _, re := range canonicalShapes {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// Region normalizes a raw region phrase into the canonical
// province/city/district form, or returns "" when the input is noise or
// cannot be reconstructed. Guangdong addresses are truncated at city
// granularity. The function is idempotent on its own outputs.
func Region(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "总部位于")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, kw := range regionNoise {
		if strings.Contains(s, kw) {
			return ""
		}
	}
	return validate(reconstruct(s))
}

func reconstruct(s string) string {
	if m := shapeFullRe.FindStringSubmatch(s); m != nil {
		if m[1] == "广东" {
			return "广东省" + m[2] + "市"
		}
		return s
	}
	if shapeProvCityRe.MatchString(s) || shapeCityRe.MatchString(s) {
		return s
	}
	if m := shapeCityDistrictRe.FindStringSubmatch(s); m != nil {
		return fromCityDistrict(m[1], m[2])
	}
	if m := municipalityRe.FindStringSubmatch(s); m != nil {
		return m[1] + "市" + m[2]
	}
	if m := bareCityDistrictRe.FindStringSubmatch(s); m != nil {
		return fromCityDistrict(m[1], m[2])
	}
	if m := looseRe.FindStringSubmatch(s); m != nil {
		prov, hasProv, city, district := m[1], m[2] != "", m[3], m[5]
		if hasProv {
			if prov == "广东" {
				return "广东省" + city + "市"
			}
			return prov + "省" + city + "市" + district
		}
		return fromCityDistrict(city, district)
	}
	if m := fallbackProvRe.FindStringSubmatch(s); m != nil {
		out := m[0]
		if m[1] == "广东" {
			out = "广东省" + m[2] + "市"
		}
		if utf8.RuneCountInString(out) <= 10 {
			return out
		}
		return ""
	}
	if out := fallbackCityRe.FindString(s); out != "" && utf8.RuneCountInString(out) <= 10 {
		return out
	}
	return ""
}

// fromCityDistrict rebuilds a region from a bare city and district pair using
// the province table. Unknown cities keep the city+district shape.
func fromCityDistrict(city, district string) string {
	if guangdongCities[city] {
		return "广东省" + city + "市"
	}
	if prov, ok := cityProvince[city]; ok {
		return prov + "省" + city + "市" + district
	}
	return city + "市" + district
}

func validate(s string) string {
	if s == "" || !IsCanonical(s) {
		return ""
	}
	return s
}
