// Package record defines the persisted job schema and the assembler that
// builds records from rendered pages.
package record

import "strings"

// Salary kinds as printed in the store.
const (
	SalaryFixed      = "非面谈"
	SalaryNegotiable = "面谈"
)

// GallerySeparator joins album URLs into one cell.
const GallerySeparator = "||"

// JobRecord is one posting joined with its employer profile. Field order
// mirrors the store columns.
type JobRecord struct {
	CompanyName       string
	CompanyType       string
	CreditCode        string
	CompanyScale      string
	RegisteredCapital string
	Region            string
	ContactPerson     string
	ContactPhone      string
	ContactEmail      string
	OfficeAddress     string
	CompanyIntro      string
	BusinessLicense   string
	Gallery           []string

	Title          string
	SalaryKind     string
	SalaryFrom     string
	SalaryTo       string
	WorkLocation   string
	Experience     string
	Education      string
	Headcount      int
	PostDate       string
	EndDate        string
	Responsibility string
	Qualification  string

	SourceCity string
}

// columns is the store header, in write order. The license and end-date
// columns are reserved and always empty.
var columns = []string{
	"企业名称", "企业类型", "社会信用码", "企业规模", "注册资本(万)", "所属区域",
	"联系人", "联系方式", "联系邮箱", "办公地址", "企业简介", "营业执照", "企业相册",
	"岗位名称", "薪资类型", "薪资范围起", "薪资范围至", "工作地点", "岗位要求",
	"学历要求", "招聘人数", "发布时间", "结束时间", "工作职责", "任职要求", "抓取城市",
}

// Columns returns the store header.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// Row returns the cell values in column order. Headcount stays numeric so the
// spreadsheet can sum it.
func (r *JobRecord) Row() []any {
	return []any{
		r.CompanyName, r.CompanyType, r.CreditCode, r.CompanyScale,
		r.RegisteredCapital, r.Region, r.ContactPerson, r.ContactPhone,
		r.ContactEmail, r.OfficeAddress, r.CompanyIntro, r.BusinessLicense,
		strings.Join(r.Gallery, GallerySeparator),
		r.Title, r.SalaryKind, r.SalaryFrom, r.SalaryTo, r.WorkLocation,
		r.Experience, r.Education, r.Headcount, r.PostDate, r.EndDate,
		r.Responsibility, r.Qualification, r.SourceCity,
	}
}

// Map returns the record keyed by column name, for the JSON mirror.
func (r *JobRecord) Map() map[string]any {
	row := r.Row()
	m := make(map[string]any, len(columns))
	for i, c := range columns {
		m[c] = row[i]
	}
	return m
}
