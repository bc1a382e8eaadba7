package fetch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsChallenge(t *testing.T) {
	t.Parallel()

	assert.True(t, IsChallenge("<html>访问过于频繁，本次访问做以下验证码校验</html>"))
	assert.True(t, IsChallenge("<html><title>验证码校验</title></html>"))
	assert.False(t, IsChallenge("<html><div class='pos_title'>销售</div></html>"))
}

func TestDetectorNeedsSession(t *testing.T) {
	t.Parallel()

	d := NewDetector(200, []string{".pos_title", ".job-title"}, []string{"请开启JavaScript"}, nil)

	goodPage := `<html><body><div class="pos_title">销售经理</div>` +
		strings.Repeat("<p>正文内容正文内容</p>", 20) + `</body></html>`

	tests := []struct {
		name string
		html string
		want bool
	}{
		{"complete page passes", goodPage, false},
		{"challenge promotes", "<html>" + strings.Repeat("x", 300) + "验证码校验</html>", true},
		{"skeleton promotes", "<html><body></body></html>", true},
		{"keyword promotes", "<html><body>" + strings.Repeat("x", 300) + "请开启JavaScript</body></html>", true},
		{"missing selectors promotes", "<html><body>" + strings.Repeat("<p>文字</p>", 50) + "</body></html>", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, d.NeedsSession(tt.html))
		})
	}
}

func TestDetectorWithoutSelectors(t *testing.T) {
	t.Parallel()

	d := NewDetector(0, nil, nil, nil)
	assert.False(t, d.NeedsSession("<html><body>anything</body></html>"))
}
