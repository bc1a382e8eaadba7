package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"canonical containment", "有限责任公司(自然人投资或控股)", "有限责任公司"},
		{"limited company keyword", "某某科技有限公司", "有限责任公司"},
		{"share company", "上市股份公司", "股份有限公司"},
		{"private", "民营企业", "私营企业"},
		{"state owned", "大型央企", "国有企业"},
		{"foreign wins over sole proprietor", "中外合资独资", "外商投资企业"},
		{"sole proprietor alone", "个人独资", "外商投资企业"},
		{"partnership", "有限合伙", "合伙企业"},
		{"branch office", "某某分公司", "非法人组织企业"},
		{"cooperative", "农民专业合作社", "农民专业合作组织"},
		{"unmatched passes through", "事业单位", "事业单位"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CompanyType(tt.in))
		})
	}
}

// TestCompanyTypeTotal checks the function never invents a value outside the
// canonical list or the original input.
func TestCompanyTypeTotal(t *testing.T) {
	t.Parallel()

	canonical := map[string]bool{}
	for _, c := range canonicalCompanyTypes {
		canonical[c] = true
	}
	inputs := []string{
		"有限责任公司", "股份有限公司(上市)", "私人工作室", "外资背景", "合伙",
		"联营", "集体", "随便写的类型", "", "国企背景单位",
	}
	for _, in := range inputs {
		got := CompanyType(in)
		assert.True(t, canonical[got] || got == in, "CompanyType(%q) = %q", in, got)
	}
}
