// Package extract pulls structured job and company fields out of rendered
// HTML. Every field runs a cascade: CSS selectors against the parsed tree
// first, then regular expressions over a prefix of the page text, so a layout
// change degrades one field instead of the whole record.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// recommendClassFragments flags sidebar blocks that carry other companies'
// postings. Matching containers are removed before any selector runs.
var recommendClassFragments = []string{"recommend", "interest", "similar"}

const recommendMarker = "您可能感兴趣"

// Document wraps a parsed page with its recommendation blocks stripped and
// its main text pre-computed.
type Document struct {
	doc   *goquery.Document
	text  string
	lines []string
}

// NewDocument parses HTML, removes recommendation containers, and caches the
// main-content text used by the regex fallbacks.
func NewDocument(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	d := &Document{doc: doc}
	d.stripRecommendations()
	d.text = d.mainText()
	d.lines = strings.Split(d.text, "\n")
	return d, nil
}

// Find runs a CSS selector against the stripped tree.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Text returns the main-content text of the page.
func (d *Document) Text() string {
	return d.text
}

// TextPrefix returns the first n lines of the main-content text. The header
// region of a detail page carries the title, salary, and conditions, so most
// regex fallbacks scan a prefix rather than the whole page.
func (d *Document) TextPrefix(n int) string {
	if n >= len(d.lines) {
		return d.text
	}
	return strings.Join(d.lines[:n], "\n")
}

func (d *Document) stripRecommendations() {
	d.doc.Find("div,section").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		lower := strings.ToLower(class)
		for _, frag := range recommendClassFragments {
			if strings.Contains(lower, frag) {
				s.Remove()
				return
			}
		}
	})
	// Remove the innermost container around the "you may be interested"
	// header; the parent walk keeps the rest of the page intact.
	d.doc.Find("div,section,aside").Each(func(_ int, s *goquery.Selection) {
		if !strings.Contains(s.Text(), recommendMarker) {
			return
		}
		if s.Find("div,section,aside").FilterFunction(func(_ int, inner *goquery.Selection) bool {
			return strings.Contains(inner.Text(), recommendMarker)
		}).Length() > 0 {
			return
		}
		s.Remove()
	})
}

// mainText prefers the primary content container over the full body so
// navigation chrome stays out of the regex fallbacks.
func (d *Document) mainText() string {
	var main *goquery.Selection
	d.doc.Find("div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		lower := strings.ToLower(class)
		if strings.Contains(lower, "main") || strings.Contains(lower, "content") || strings.Contains(lower, "detail") {
			main = s
			return false
		}
		return true
	})
	if main != nil {
		return main.Text()
	}
	return d.doc.Text()
}
