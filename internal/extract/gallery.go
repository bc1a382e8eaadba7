package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultImageHost hosts the site's relative image paths.
const DefaultImageHost = "https://pic1.58cdn.com.cn"

const galleryCap = 10

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// decorationNameFragments drop chrome images that are not photos.
var decorationNameFragments = []string{"icon", "logo", "avatar", "default", "placeholder"}

// stockPhotoURLs are site-wide filler images served for employers without an
// album.
var stockPhotoURLs = map[string]bool{
	"https://pic1.58cdn.com.cn/nowater/cxnomark/n_v2e8d9dbce287f4e45bb5ebebbe90bb295.png": true,
	"https://pic1.58cdn.com.cn/nowater/cxnomark/n_v2502726ab70ad4151ba43adc35fda265e.png": true,
}

var albumHeaders = []string{"公司相册", "企业相册"}

// Gallery collects album photo URLs from the employer page: absolute, unique,
// in document order, at most ten. The search narrows to the album section
// when one is labeled, because the full page carries banner and avatar
// images.
func Gallery(d *Document, imageHost string) []string {
	if imageHost == "" {
		imageHost = DefaultImageHost
	}

	scope := albumScope(d)

	urls := make([]string, 0, galleryCap)
	seen := make(map[string]bool)
	scope.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw, ok := s.Attr("data-src")
		if !ok || strings.TrimSpace(raw) == "" {
			raw, _ = s.Attr("src")
		}
		u := normalizeImageURL(strings.TrimSpace(raw), imageHost)
		if u == "" || seen[u] {
			return true
		}
		seen[u] = true
		urls = append(urls, u)
		return len(urls) < galleryCap
	})
	return urls
}

// albumScope walks up from the album header to a container wide enough to
// hold the photo strip. Without a header the whole document is the scope.
func albumScope(d *Document) *goquery.Selection {
	// Ancestors of the header text also match, so the last hit in document
	// order is the innermost one.
	var header *goquery.Selection
	d.Find("span,div,h2,h3,p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		for _, h := range albumHeaders {
			if text == h || (strings.Contains(text, h) && len(text) < 3*len(h)) {
				header = s
				return
			}
		}
	})
	if header == nil {
		return d.Find("html")
	}
	scope := header
	for i := 0; i < 3; i++ {
		parent := scope.Parent()
		if parent.Length() == 0 {
			break
		}
		scope = parent
	}
	return scope
}

func normalizeImageURL(raw, imageHost string) string {
	if raw == "" {
		return ""
	}
	lower := strings.ToLower(raw)
	if !containsAny(lower, imageExtensions) {
		return ""
	}
	var u string
	switch {
	case strings.HasPrefix(raw, "//"):
		u = "https:" + raw
	case strings.HasPrefix(raw, "/"):
		u = imageHost + raw
	case strings.HasPrefix(raw, "http"):
		u = raw
	default:
		return ""
	}
	if stockPhotoURLs[u] || containsAny(strings.ToLower(u), decorationNameFragments) {
		return ""
	}
	return u
}
