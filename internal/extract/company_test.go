package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyTypeRaw(t *testing.T) {
	t.Parallel()

	d := mustDoc(t, `<html><body><p>有限责任公司(自然人投资或控股)</p></body></html>`)
	assert.Equal(t, "有限责任公司(自然人投资或控股)", CompanyTypeRaw(d))
}

func TestCreditCode(t *testing.T) {
	t.Parallel()

	d := mustDoc(t, `<html><body><p>统一社会信用代码：91110108MA01ABCD2X</p></body></html>`)
	assert.Equal(t, "91110108MA01ABCD2X", CreditCode(d))
}

func TestScaleRaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{"range", `<html><body><p>员工规模：10-49人</p></body></html>`, "10-49人"},
		{"above", `<html><body><p>公司规模：1000人以上</p></body></html>`, "1000人以上"},
		{"bare label", `<html><body><p>规模：50人</p></body></html>`, "50人"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ScaleRaw(mustDoc(t, tt.html)))
		})
	}
}

func TestRegisteredCapital(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{"ten thousands suffix stripped", `<html><body><p>注册资本：500万</p></body></html>`, "500"},
		{"yuan converted", `<html><body><p>注册资金：5000000</p></body></html>`, "500"},
		{"small bare number kept", `<html><body><p>注册资本：800</p></body></html>`, "800"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RegisteredCapital(mustDoc(t, tt.html)))
		})
	}
}

func TestRegionRaw(t *testing.T) {
	t.Parallel()

	t.Run("labeled", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><p>所属区域：北京市房山区</p></body></html>`)
		assert.Equal(t, "北京市房山区", RegionRaw(d))
	})

	t.Run("glued duplicate trimmed to first run", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><p>所属区域：北京市房山区阳光大街北京市房山区</p></body></html>`)
		assert.Equal(t, "北京市房山区", RegionRaw(d))
	})
}

func TestContactPerson(t *testing.T) {
	t.Parallel()

	t.Run("structured detail item", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body>
			<div class="c_detail_item"><span>联系人</span><em>王经理</em></div>
		</body></html>`)
		assert.Equal(t, "王经理", ContactPerson(d))
	})

	t.Run("placeholder rejected", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body>
			<div class="c_detail_item"><span>联系人</span><em>企业未添加</em></div>
		</body></html>`)
		assert.Empty(t, ContactPerson(d))
	})

	t.Run("labeled text fallback", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><p>联系人：李女士</p></body></html>`)
		assert.Equal(t, "李女士", ContactPerson(d))
	})
}

func TestCompanyPhoneGate(t *testing.T) {
	t.Parallel()

	t.Run("placeholder profile hides number", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><p>联系方式 企业未添加 13812345678</p></body></html>`)
		assert.Empty(t, CompanyPhone(d))
	})

	t.Run("filled profile keeps number", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><p>联系方式 13812345678</p></body></html>`)
		assert.Equal(t, "13812345678", CompanyPhone(d))
	})
}

func TestCompanyAddress(t *testing.T) {
	t.Parallel()

	d := mustDoc(t, `<html><body><p>公司地址：北京市朝阳区望京街道望京街道十号楼 出口</p></body></html>`)
	assert.Equal(t, "北京市朝阳区望京街道十号楼", CompanyAddress(d))
}

func TestCompanyIntro(t *testing.T) {
	t.Parallel()

	t.Run("structured block", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><div class="introduction">
			<span class="c_title">公司简介</span>
			<div class="introduction_box">我们是一家专注于企业服务的软件公司，团队成员超过一百人。</div>
		</div></body></html>`)
		assert.Equal(t, "我们是一家专注于企业服务的软件公司，团队成员超过一百人。", CompanyIntro(d))
	})

	t.Run("boilerplate rejected", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><div class="introduction">
			<span class="c_title">公司简介</span>
			<div class="introduction_box">老板忙得连写简介的时间都没有，先投个简历试试吧</div>
		</div></body></html>`)
		assert.Empty(t, CompanyIntro(d))
	})

	t.Run("too short rejected", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><div class="introduction">
			<span class="c_title">公司简介</span>
			<div class="introduction_box">好公司</div>
		</div></body></html>`)
		assert.Empty(t, CompanyIntro(d))
	})
}

func TestCollapseRepeats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"北京北京市朝阳区", "北京市朝阳区"},
		{"望京街道望京街道十号", "望京街道十号"},
		{"正常地址不变", "正常地址不变"},
		{"mixed 文本文本 ok", "mixed 文本 ok"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, collapseRepeats(tt.in), "input %q", tt.in)
	}
}
