package crawl

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/city58/jobharvest/internal/fetch"
	"github.com/city58/jobharvest/internal/record"
)

type mapFetcher struct {
	pages   map[string]string
	visited []string
}

func (m *mapFetcher) Fetch(_ context.Context, rawURL string) (fetch.Page, error) {
	m.visited = append(m.visited, rawURL)
	html, ok := m.pages[rawURL]
	if !ok {
		return fetch.Page{}, fmt.Errorf("no page for %s", rawURL)
	}
	return fetch.Page{URL: rawURL, FinalURL: rawURL, HTML: html}, nil
}

func (m *mapFetcher) Close(context.Context) error { return nil }

type memStore struct {
	recs []*record.JobRecord
}

func (s *memStore) Append(rec *record.JobRecord) (bool, error) {
	s.recs = append(s.recs, rec)
	return true, nil
}

func testConfig(cities ...CitySeed) Config {
	return Config{
		Cities:     cities,
		MaxPages:   2,
		OutputXLSX: "unused.xlsx",
		OutputJSON: "unused.json",
	}
}

const listingPage1 = `<html><body>
	<ul>
		<li><a href="/job/1x.shtml"><span class="name">销售经理</span></a></li>
		<li><a href="/job/2x.shtml"><span class="name">培训课程顾问</span></a></li>
	</ul>
	<div class="pagesout"><a href="/hulianwangtx/pn2/">2</a></div>
</body></html>`

const listingPage2 = `<html><body><p>没有更多结果</p></body></html>`

const jobDetail = `<html><body>
	<div class="pos_title">销售经理</div>
	<span class="pos_salary">8000-12000元/月</span>
	<span class="pos_area_item">北京</span>
	<span class="pos_area_item">朝阳</span>
	<div class="baseInfo_link"><a href="//qy.58.com/100/">北京某某科技有限公司</a></div>
	<div class="des">岗位职责：开拓客户 任职要求：抗压能力强</div>
</body></html>`

const trainingAdDetail = `<html><body>
	<div class="pos_title">高薪职位培训广告</div>
</body></html>`

const employerPage = `<html><body>
	<p>所属区域：北京市朝阳区</p>
	<p>员工规模：10-49人</p>
</body></html>`

func TestDriverRun(t *testing.T) {
	t.Parallel()

	city := CitySeed{Name: "北京", URL: "https://bj.58.com/hulianwangtx/"}
	fetcher := &mapFetcher{pages: map[string]string{
		"https://bj.58.com/hulianwangtx/":     listingPage1,
		"https://bj.58.com/hulianwangtx/pn2/": listingPage2,
		"https://bj.58.com/job/1x.shtml":      jobDetail,
		"https://bj.58.com/job/2x.shtml":      trainingAdDetail,
		"https://qy.58.com/100/":              employerPage,
	}}
	store := &memStore{}

	d := NewDriver(testConfig(city), fetcher, store, nil)
	sum, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Pages)
	assert.Equal(t, 1, sum.Persisted)
	assert.Equal(t, 1, sum.Skipped, "training ad must be skipped")
	assert.Zero(t, sum.Failed)

	require.Len(t, store.recs, 1)
	rec := store.recs[0]
	assert.Equal(t, "北京", rec.SourceCity)
	assert.Equal(t, "北京某某科技有限公司", rec.CompanyName)
	assert.Equal(t, "北京市朝阳区", rec.Region)
	assert.Equal(t, "20-99", rec.CompanyScale)

	assert.Contains(t, fetcher.visited, "https://qy.58.com/100/")
}

func TestDriverJobFailureDoesNotStopRun(t *testing.T) {
	t.Parallel()

	city := CitySeed{Name: "北京", URL: "https://bj.58.com/hulianwangtx/"}
	fetcher := &mapFetcher{pages: map[string]string{
		"https://bj.58.com/hulianwangtx/":     listingPage1,
		"https://bj.58.com/hulianwangtx/pn2/": listingPage2,
		// job 1x missing: its fetch fails
		"https://bj.58.com/job/2x.shtml": trainingAdDetail,
	}}
	store := &memStore{}

	d := NewDriver(testConfig(city), fetcher, store, nil)
	sum, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, 1, sum.Skipped)
	assert.Empty(t, store.recs)
}

type deadSessionFetcher struct{}

func (deadSessionFetcher) Fetch(context.Context, string) (fetch.Page, error) {
	return fetch.Page{}, fetch.ErrSessionUnavailable
}

func (deadSessionFetcher) Close(context.Context) error { return nil }

func TestDriverAbortsWhenSessionDies(t *testing.T) {
	t.Parallel()

	city := CitySeed{Name: "北京", URL: "https://bj.58.com/hulianwangtx/"}
	d := NewDriver(testConfig(city), deadSessionFetcher{}, &memStore{}, nil)

	_, err := d.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fetch.ErrSessionUnavailable)
}

func TestDriverCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	city := CitySeed{Name: "北京", URL: "https://bj.58.com/hulianwangtx/"}
	fetcher := &mapFetcher{pages: map[string]string{}}
	d := NewDriver(testConfig(city), fetcher, &memStore{}, nil)

	_, err := d.Run(ctx)
	require.Error(t, err)
}
