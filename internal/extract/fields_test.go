package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, html string) *Document {
	t.Helper()
	d, err := NewDocument(html)
	require.NoError(t, err)
	return d
}

func TestTitle(t *testing.T) {
	t.Parallel()

	t.Run("primary selector", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><div class="pos_title">销售代表</div></body></html>`)
		assert.Equal(t, "销售代表", Title(d))
	})

	t.Run("skips cross-posted text", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body>
			<h1>您可能感兴趣的职位</h1>
			<div class="job-title">前端工程师</div>
		</body></html>`)
		assert.Equal(t, "前端工程师", Title(d))
	})

	t.Run("recommendation container is stripped", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body>
			<div class="recommend_list"><div class="pos_title">别家职位</div></div>
			<div class="pos_title">客服专员</div>
		</body></html>`)
		assert.Equal(t, "客服专员", Title(d))
	})
}

func TestCompany(t *testing.T) {
	t.Parallel()

	t.Run("anchor yields name and link", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><div class="baseInfo_link"><a href="/qiye/123.html">北京某某科技有限公司</a></div></body></html>`)
		name, link := Company(d)
		assert.Equal(t, "北京某某科技有限公司", name)
		assert.Equal(t, "https://58.com/qiye/123.html", link)
	})

	t.Run("protocol relative link", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><div class="baseInfo_link"><a href="//qy.58.com/123/">上海某某网络科技有限公司</a></div></body></html>`)
		_, link := Company(d)
		assert.Equal(t, "https://qy.58.com/123/", link)
	})

	t.Run("rejects wechat prompt", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body>
			<div class="company-name">微信扫一扫快速求职某公司</div>
			<div class="corp-name">广州某某贸易有限公司</div>
		</body></html>`)
		name, _ := Company(d)
		assert.Equal(t, "广州某某贸易有限公司", name)
	})

	t.Run("rejects names outside length bounds", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><div class="company-name">公司</div></body></html>`)
		name, _ := Company(d)
		assert.Empty(t, name)
	})

	t.Run("regex fallback from text", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><p>招聘方：深圳创新电子有限公司 期待您的加入</p></body></html>`)
		name, link := Company(d)
		assert.Equal(t, "深圳创新电子有限公司", name)
		assert.Empty(t, link)
	})
}

func TestSalary(t *testing.T) {
	t.Parallel()

	t.Run("selector range", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><span class="pos_salary">6000-9000元/月</span></body></html>`)
		from, to := Salary(d)
		assert.Equal(t, "6000", from)
		assert.Equal(t, "9000", to)
	})

	t.Run("text fallback", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><p>月薪8000-12000元/月，五险一金</p></body></html>`)
		from, to := Salary(d)
		assert.Equal(t, "8000", from)
		assert.Equal(t, "12000", to)
	})

	t.Run("negotiable yields empty bounds", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><span class="pos_salary">面议</span></body></html>`)
		from, to := Salary(d)
		assert.Empty(t, from)
		assert.Empty(t, to)
	})
}

func TestLocation(t *testing.T) {
	t.Parallel()

	t.Run("breadcrumb items", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body>
			<span class="pos_area_item">北京</span>
			<span class="pos_area_item">朝阳</span>
			<span class="pos_area_item">望京</span>
		</body></html>`)
		assert.Equal(t, "北京 - 朝阳", Location(d))
	})

	t.Run("text fallback strips city suffix", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><p>地址：杭州市西湖区文三路</p></body></html>`)
		assert.Equal(t, "杭州 - 西湖区", Location(d))
	})
}

func TestEducation(t *testing.T) {
	t.Parallel()

	t.Run("condition item", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><span class="item_condition">本科及以上</span></body></html>`)
		assert.Equal(t, "本科及以上", Education(d))
	})

	t.Run("low levels collapse", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><span class="item_condition">高中学历</span></body></html>`)
		assert.Equal(t, "学历不限", Education(d))
	})

	t.Run("regex fallback collapses too", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><p>学历要求：中专即可</p></body></html>`)
		assert.Equal(t, "学历不限", Education(d))
	})
}

func TestExperience(t *testing.T) {
	t.Parallel()

	t.Run("condition item skips education and headcount", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body>
			<span class="item_condition">本科学历不限</span>
			<span class="item_condition">招5人</span>
			<span class="item_condition">3-5年经验</span>
		</body></html>`)
		assert.Equal(t, "3-5年经验", Experience(d))
	})

	t.Run("two group fallback formats range", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><p>需要经验1~3年者优先</p></body></html>`)
		assert.Equal(t, "1-3年经验", Experience(d))
	})
}

func TestHeadcount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want int
	}{
		{"condition item", `<html><body><span class="item_condition">招10人</span></body></html>`, 10},
		{"text fallback", `<html><body><p>本次招聘3人，待遇从优</p></body></html>`, 3},
		{"default", `<html><body><p>岗位描述</p></body></html>`, 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Headcount(mustDoc(t, tt.html)))
		})
	}
}

func TestPostDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{"labeled full date", `<html><body><p>发布时间：2024-03-15</p></body></html>`, "2024-03-15"},
		{"relative day", `<html><body><p>昨天 更新</p></body></html>`, "昨天"},
		{"hours ago", `<html><body><p>3小时前发布</p></body></html>`, "3"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PostDate(mustDoc(t, tt.html)))
		})
	}
}

func TestDuties(t *testing.T) {
	t.Parallel()

	t.Run("sections split", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><div class="des">
岗位职责：负责客户开发与维护
任职要求：沟通能力强，能承受压力
福利待遇：五险一金
		</div></body></html>`)
		resp, qual := Duties(d)
		assert.Equal(t, "负责客户开发与维护", resp)
		assert.Equal(t, "沟通能力强，能承受压力", qual)
	})

	t.Run("headerless description lands in qualifications", func(t *testing.T) {
		t.Parallel()
		d := mustDoc(t, `<html><body><div class="des">热情开朗  吃苦耐劳
欢迎加入我们</div></body></html>`)
		resp, qual := Duties(d)
		assert.Empty(t, resp)
		assert.Equal(t, "热情开朗 吃苦耐劳 欢迎加入我们", qual)
	})

	t.Run("long section is capped", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("责", 600)
		d := mustDoc(t, `<html><body><div class="des">岗位职责：`+long+`</div></body></html>`)
		resp, _ := Duties(d)
		assert.Len(t, []rune(resp), 500)
	})
}

func TestContactFields(t *testing.T) {
	t.Parallel()

	d := mustDoc(t, `<html><body><p>联系电话：13812345678 邮箱：hr@example.com</p>
	<p>办公地址：北京市海淀区中关村大街1号 联系我们</p></body></html>`)
	assert.Equal(t, "13812345678", ContactPhone(d))
	assert.Equal(t, "hr@example.com", ContactEmail(d))
	assert.Equal(t, "北京市海淀区中关村大街1号", OfficeAddress(d))
}
