// Package listing walks result pages: it finds detail-page links and the next
// page of a city's listing.
package listing

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/city58/jobharvest/internal/extract"
)

// detailHrefFragments admit a link as a job detail page.
var detailHrefFragments = []string{"shtml", "job", "zhaopin", "detail"}

// nextPageLabels are the pager texts tried when no numbered link matches.
var nextPageLabels = map[string]bool{"下一页": true, "下页": true, ">": true}

// DetailLinks returns the detail-page URLs on a listing page, absolute and
// de-duplicated in document order. Selector families are tried in order and
// the first family that yields links wins, so a precise match is never
// polluted by the generic anchors.
func DetailLinks(doc *extract.Document, base *url.URL) []string {
	families := [][]string{
		{"span.name"},
		{"a[href*='shtml']"},
		{"a[href*='job']", "a[href*='zhaopin']"},
		{".job_name a", ".job-title a", ".title a"},
	}
	for _, family := range families {
		var links []string
		seen := make(map[string]bool)
		for _, sel := range family {
			doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
				href := hrefFor(s)
				u := admitDetailURL(href, base)
				if u == "" || seen[u] {
					return
				}
				seen[u] = true
				links = append(links, u)
			})
		}
		if len(links) > 0 {
			return links
		}
	}
	return nil
}

// hrefFor resolves the anchor for a matched element: the element itself, an
// enclosing anchor, or the nearest sibling anchor. Listing cards wrap the
// title span in different places across templates.
func hrefFor(s *goquery.Selection) string {
	if goquery.NodeName(s) == "a" {
		href, _ := s.Attr("href")
		return href
	}
	if anc := s.Closest("a"); anc.Length() > 0 {
		href, _ := anc.Attr("href")
		return href
	}
	if sib := s.NextAllFiltered("a").First(); sib.Length() > 0 {
		href, _ := sib.Attr("href")
		return href
	}
	if sib := s.PrevAllFiltered("a").First(); sib.Length() > 0 {
		href, _ := sib.Attr("href")
		return href
	}
	return ""
}

func admitDetailURL(href string, base *url.URL) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "javascript") || strings.HasPrefix(href, "#") {
		return ""
	}
	admitted := false
	for _, frag := range detailHrefFragments {
		if strings.Contains(href, frag) {
			admitted = true
			break
		}
	}
	if !admitted {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base != nil {
		ref = base.ResolveReference(ref)
	}
	if ref.Scheme != "http" && ref.Scheme != "https" {
		return ""
	}
	return ref.String()
}

// NextPage returns the URL of page target. A numbered pager link wins, then a
// "next" label, and as a last resort the URL is built from the city base,
// which matches the site's /pn{N}/ layout.
func NextPage(doc *extract.Document, target int, cityBase string) string {
	base, _ := url.Parse(cityBase)
	pageToken := "pn" + strconv.Itoa(target)

	var numbered, next string
	doc.Find(".pagesout a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		text := strings.TrimSpace(s.Text())
		if numbered == "" && text == strconv.Itoa(target) && strings.Contains(href, pageToken) {
			numbered = resolve(base, href)
		}
		if next == "" && nextPageLabels[text] {
			next = resolve(base, href)
		}
	})
	if numbered != "" {
		return numbered
	}
	if next != "" {
		return next
	}
	return fmt.Sprintf("%s/pn%d/", strings.TrimRight(cityBase, "/"), target)
}

func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base != nil {
		ref = base.ResolveReference(ref)
	}
	return ref.String()
}
