package record

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/city58/jobharvest/internal/extract"
	"github.com/city58/jobharvest/internal/normalize"
)

// HTMLFetcher retrieves a page and returns its rendered HTML. The crawl
// driver adapts its session fetcher to this.
type HTMLFetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// Assembler builds JobRecords from detail pages, following the employer link
// for the company profile when one exists.
type Assembler struct {
	fetcher   HTMLFetcher
	logger    *zap.Logger
	imageHost string
}

// NewAssembler returns an Assembler. fetcher may be nil, in which case
// employer pages are never visited and records carry posting fields only.
func NewAssembler(fetcher HTMLFetcher, imageHost string, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{fetcher: fetcher, logger: logger, imageHost: imageHost}
}

// Assemble extracts a record from a detail page. It returns (nil, nil) for
// postings identified as training ads. A failed employer-page fetch degrades
// to a partial record rather than an error: the posting side is already in
// hand.
func (a *Assembler) Assemble(ctx context.Context, doc *extract.Document) (*JobRecord, error) {
	title := extract.Title(doc)
	if strings.Contains(title, extract.TrainingAdMarker) {
		a.logger.Debug("dropping training ad", zap.String("title", title))
		return nil, nil
	}

	name, link := extract.Company(doc)
	from, to := extract.Salary(doc)
	resp, qual := extract.Duties(doc)

	rec := &JobRecord{
		CompanyName:    name,
		Title:          title,
		SalaryFrom:     from,
		SalaryTo:       to,
		SalaryKind:     salaryKind(from, to),
		WorkLocation:   extract.Location(doc),
		Experience:     extract.Experience(doc),
		Education:      extract.Education(doc),
		Headcount:      extract.Headcount(doc),
		PostDate:       extract.PostDate(doc),
		Responsibility: resp,
		Qualification:  qual,
		ContactPhone:   extract.ContactPhone(doc),
		ContactEmail:   extract.ContactEmail(doc),
		OfficeAddress:  extract.OfficeAddress(doc),
	}

	if link == "" || a.fetcher == nil {
		return rec, nil
	}

	html, err := a.fetcher.Fetch(ctx, link)
	if err != nil {
		a.logger.Warn("employer page fetch failed, keeping partial record",
			zap.String("company", name), zap.String("url", link), zap.Error(err))
		return rec, nil
	}
	cdoc, err := extract.NewDocument(html)
	if err != nil {
		a.logger.Warn("employer page parse failed, keeping partial record",
			zap.String("company", name), zap.Error(err))
		return rec, nil
	}
	a.overlayCompany(rec, cdoc)
	return rec, nil
}

// overlayCompany merges employer-profile fields into the record. Profile
// values win only when non-empty, so posting-side contacts survive a sparse
// profile.
func (a *Assembler) overlayCompany(rec *JobRecord, doc *extract.Document) {
	if v := normalize.CompanyType(extract.CompanyTypeRaw(doc)); v != "" {
		rec.CompanyType = v
	}
	if v := extract.CreditCode(doc); v != "" {
		rec.CreditCode = v
	}
	if v := normalize.Scale(extract.ScaleRaw(doc)); v != "" {
		rec.CompanyScale = v
	}
	if v := extract.RegisteredCapital(doc); v != "" {
		rec.RegisteredCapital = v
	}
	if v := normalize.Region(extract.RegionRaw(doc)); v != "" {
		rec.Region = v
	}
	if v := extract.ContactPerson(doc); v != "" {
		rec.ContactPerson = v
	}
	if v := extract.CompanyPhone(doc); v != "" {
		rec.ContactPhone = v
	}
	if v := extract.CompanyEmail(doc); v != "" {
		rec.ContactEmail = v
	}
	if v := extract.CompanyAddress(doc); v != "" {
		rec.OfficeAddress = v
	}
	if v := extract.CompanyIntro(doc); v != "" {
		rec.CompanyIntro = v
	}
	if g := extract.Gallery(doc, a.imageHost); len(g) > 0 {
		rec.Gallery = g
	}
}

func salaryKind(from, to string) string {
	if from != "" && to != "" {
		return SalaryFixed
	}
	return SalaryNegotiable
}
