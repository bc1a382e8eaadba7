package fetch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	page   Page
	err    error
	calls  int
	closed bool
}

func (s *stubFetcher) Fetch(context.Context, string) (Page, error) {
	s.calls++
	return s.page, s.err
}

func (s *stubFetcher) Close(context.Context) error {
	s.closed = true
	return nil
}

func TestPromotingFetcherKeepsStaticResult(t *testing.T) {
	t.Parallel()

	good := `<html><body><div class="pos_title">销售</div></body></html>`
	static := &stubFetcher{page: Page{URL: "u", HTML: good}}
	session := &stubFetcher{page: Page{URL: "u", HTML: "rendered"}}
	d := NewDetector(0, []string{".pos_title"}, nil, nil)

	f := NewPromotingFetcher(static, session, d, nil)
	page, err := f.Fetch(context.Background(), "u")
	require.NoError(t, err)
	assert.Equal(t, good, page.HTML)
	assert.Equal(t, 1, static.calls)
	assert.Zero(t, session.calls)
}

func TestPromotingFetcherPromotesOnDetector(t *testing.T) {
	t.Parallel()

	static := &stubFetcher{page: Page{URL: "u", HTML: "<html><body>空壳</body></html>"}}
	session := &stubFetcher{page: Page{URL: "u", HTML: "rendered"}}
	d := NewDetector(0, []string{".pos_title"}, nil, nil)

	f := NewPromotingFetcher(static, session, d, nil)
	page, err := f.Fetch(context.Background(), "u")
	require.NoError(t, err)
	assert.Equal(t, "rendered", page.HTML)
	assert.Equal(t, 1, session.calls)
}

func TestPromotingFetcherPromotesOnError(t *testing.T) {
	t.Parallel()

	static := &stubFetcher{err: errors.New("connection refused")}
	session := &stubFetcher{page: Page{URL: "u", HTML: "rendered"}}

	f := NewPromotingFetcher(static, session, NewDetector(0, nil, nil, nil), nil)
	page, err := f.Fetch(context.Background(), "u")
	require.NoError(t, err)
	assert.Equal(t, "rendered", page.HTML)
}

func TestPromotingFetcherCloseClosesSession(t *testing.T) {
	t.Parallel()

	static := &stubFetcher{}
	session := &stubFetcher{}
	f := NewPromotingFetcher(static, session, nil, nil)
	require.NoError(t, f.Close(context.Background()))
	assert.True(t, session.closed)
}
