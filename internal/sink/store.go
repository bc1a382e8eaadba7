// Package sink persists job records to an xlsx workbook with a JSON mirror.
// Appends rewrite the whole workbook, so a crash between jobs loses at most
// the in-flight record.
package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/city58/jobharvest/internal/metrics"
	"github.com/city58/jobharvest/internal/normalize"
	"github.com/city58/jobharvest/internal/record"
)

const sheetName = "Sheet1"

// mandatoryColumns must be non-empty for a record to be stored.
var mandatoryColumns = []string{"企业名称", "工作职责", "任职要求", "所属区域"}

// Store owns the xlsx workbook and its JSON mirror. It is not safe for
// concurrent use; the crawl driver is sequential.
type Store struct {
	xlsxPath string
	jsonPath string
	logger   *zap.Logger
}

// NewStore returns a Store writing to the given paths. Parent directories are
// created on first write.
func NewStore(xlsxPath, jsonPath string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{xlsxPath: xlsxPath, jsonPath: jsonPath, logger: logger}
}

// Append validates rec, backfills the region from the work location when the
// employer page gave none, and persists. It reports whether the record was
// stored; a validation failure is not an error.
func (s *Store) Append(rec *record.JobRecord) (bool, error) {
	backfillRegion(rec)

	if field := missingMandatory(rec); field != "" {
		s.logger.Info("skipping record",
			zap.String("reason", "missing "+field),
			zap.String("company", rec.CompanyName),
			zap.String("title", rec.Title))
		metrics.TotalRecordsSkipped.WithLabelValues(field).Inc()
		return false, nil
	}

	rows, err := s.load()
	if err != nil {
		return false, err
	}
	rows = append(rows, rec.Map())
	if err := s.write(rows); err != nil {
		return false, err
	}
	metrics.TotalRecordsPersisted.Inc()
	return true, nil
}

// WriteAll replaces the store contents with recs.
func (s *Store) WriteAll(recs []*record.JobRecord) error {
	rows := make([]map[string]any, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, r.Map())
	}
	return s.write(rows)
}

// Wipe empties the store, keeping the header row.
func (s *Store) Wipe() error {
	return s.write(nil)
}

// RemoveCompany deletes every record of the named employer and returns how
// many rows went away.
func (s *Store) RemoveCompany(name string) (int, error) {
	rows, err := s.load()
	if err != nil {
		return 0, err
	}
	kept := rows[:0]
	removed := 0
	for _, row := range rows {
		if company, _ := row["企业名称"].(string); company == name {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, s.write(kept)
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	rows, err := s.load()
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// load reads the JSON mirror, which is the authoritative copy between runs.
// Nulls come back as empty strings so downstream formatting never sees nil.
func (s *Store) load() ([]map[string]any, error) {
	data, err := os.ReadFile(s.jsonPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store mirror %s: %w", s.jsonPath, err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode store mirror %s: %w", s.jsonPath, err)
	}
	for _, row := range rows {
		for k, v := range row {
			if v == nil {
				row[k] = ""
			}
		}
	}
	return rows, nil
}

func (s *Store) write(rows []map[string]any) error {
	if err := s.writeXLSX(rows); err != nil {
		return err
	}
	return s.writeJSON(rows)
}

func (s *Store) writeXLSX(rows []map[string]any) error {
	if err := ensureDir(s.xlsxPath); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // in-memory workbook

	columns := record.Columns()
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		cells := make([]any, len(columns))
		for j, c := range columns {
			cells[j] = cellValue(row[c])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(s.xlsxPath); err != nil {
		return fmt.Errorf("save workbook %s: %w", s.xlsxPath, err)
	}
	return nil
}

func (s *Store) writeJSON(rows []map[string]any) error {
	if err := ensureDir(s.jsonPath); err != nil {
		return err
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store mirror: %w", err)
	}
	if err := os.WriteFile(s.jsonPath, data, 0o640); err != nil {
		return fmt.Errorf("write store mirror %s: %w", s.jsonPath, err)
	}
	return nil
}

// cellValue keeps numbers numeric; JSON round-trips integers as float64.
func cellValue(v any) any {
	switch n := v.(type) {
	case nil:
		return ""
	case float64:
		if n == float64(int64(n)) {
			return int64(n)
		}
		return n
	default:
		return v
	}
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return nil
}

func missingMandatory(rec *record.JobRecord) string {
	m := rec.Map()
	for _, c := range mandatoryColumns {
		if v, _ := m[c].(string); strings.TrimSpace(v) == "" {
			return c
		}
	}
	return ""
}

// backfillRegion derives the region from the posting's work location when the
// employer profile gave none. "北京 - 朝阳" becomes 北京朝阳区 and then runs
// through the normalizer like any other raw value.
func backfillRegion(rec *record.JobRecord) {
	if strings.TrimSpace(rec.Region) != "" || strings.TrimSpace(rec.WorkLocation) == "" {
		return
	}
	loc := strings.ReplaceAll(rec.WorkLocation, " - ", "")
	loc = strings.ReplaceAll(loc, "-", "")
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return
	}
	if !strings.Contains(loc, "区") && utf8.RuneCountInString(loc) > 2 {
		loc += "区"
	}
	rec.Region = normalize.Region(loc)
}
