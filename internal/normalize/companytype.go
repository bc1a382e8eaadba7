package normalize

import "strings"

// CompanyType maps a raw legal-entity phrase onto one of the canonical
// company types. Exact containment of a canonical name wins; otherwise the
// ordered keyword groups decide. Unmatched text passes through unchanged.
func CompanyType(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	for _, canonical := range canonicalCompanyTypes {
		if strings.Contains(s, canonical) {
			return canonical
		}
	}
	for _, rule := range companyTypeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(s, kw) {
				return rule.canonical
			}
		}
	}
	return s
}
