// Package excel reads raw specification sheets and writes the reformatted
// workbook. All cell access goes through excelize; the rest of the program
// only ever sees sanitized rows.
package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/averin/bomsheet/pkg/config"
	"github.com/averin/bomsheet/pkg/domain/entities"
)

// MissingColumnsError indicates that the input sheet does not carry the
// required column set. It aborts processing of that file only.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("sheet is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// RowData is one kept line of the input sheet: the sanitized cells of every
// kept column, plus the typed view the tree builder consumes.
type RowData struct {
	Line  int
	Cells []string // aligned with Document.Columns
	Row   entities.Row
}

// Document is a fully sanitized input sheet.
type Document struct {
	Columns []string // kept column headers in sheet order, dropped columns removed
	Rows    []RowData
}

// Reader loads and sanitizes specification sheets.
type Reader struct {
	cfg *config.Config
	log *zap.Logger
}

// NewReader creates a Reader. A nil logger is replaced with a nop logger.
func NewReader(cfg *config.Config, log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{cfg: cfg, log: log}
}

// Read opens the workbook, validates the column set of its first sheet and
// returns the sanitized rows. Rows that are entirely blank, or whose amount
// cell does not parse, are dropped with a log message; a bad column set
// fails the whole file with a MissingColumnsError.
func (r *Reader) Read(path string) (*Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s of %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, &MissingColumnsError{Missing: r.cfg.RequiredColumns}
	}

	header := rows[0]
	columnIndex := make(map[string]int, len(header))
	for i, cell := range header {
		columnIndex[cleanHeader(cell)] = i
	}

	var missing []string
	for _, column := range r.cfg.RequiredColumns {
		if _, ok := columnIndex[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	dropped := make(map[string]struct{}, len(r.cfg.DroppedColumns))
	for _, column := range r.cfg.DroppedColumns {
		dropped[strings.ToLower(column)] = struct{}{}
	}
	var kept []int
	var columns []string
	for i, cell := range header {
		name := cleanHeader(cell)
		if _, drop := dropped[name]; drop {
			continue
		}
		kept = append(kept, i)
		columns = append(columns, strings.TrimSpace(strings.ReplaceAll(cell, "\n", "")))
	}

	doc := &Document{Columns: columns}
	for i, raw := range rows[1:] {
		line := i + 2 // 1-based, after the header
		rd, ok := r.sanitizeRow(line, raw, columnIndex, kept)
		if !ok {
			continue
		}
		doc.Rows = append(doc.Rows, rd)
	}
	return doc, nil
}

// sanitizeRow cleans one raw sheet row. It reports ok=false for rows that
// should not reach the tree builder at all: fully blank rows and rows whose
// amount is unparseable.
func (r *Reader) sanitizeRow(line int, raw []string, columnIndex map[string]int, kept []int) (RowData, bool) {
	cell := func(i int) string {
		if i < 0 || i >= len(raw) {
			return ""
		}
		return CleanCell(raw[i])
	}
	at := func(meaning int) string {
		return cell(columnIndex[r.cfg.RequiredColumns[meaning]])
	}

	cells := make([]string, len(kept))
	empty := true
	for n, i := range kept {
		cells[n] = cell(i)
		if cells[n] != "" {
			empty = false
		}
	}
	if empty {
		r.log.Debug("dropping blank row", zap.Int("row", line))
		return RowData{}, false
	}

	amount, err := parseAmount(at(config.ColAmount))
	if err != nil {
		r.log.Error("skipping row", zap.Int("row", line), zap.Error(err))
		return RowData{}, false
	}

	return RowData{
		Line:  line,
		Cells: cells,
		Row: entities.Row{
			Line:       line,
			Position:   at(config.ColPosition),
			Name:       at(config.ColName),
			Category:   at(config.ColCategory),
			Code:       at(config.ColCode),
			WorkFile:   at(config.ColWorkFile),
			MakingType: at(config.ColMakingType),
			Material:   at(config.ColMaterial),
			Comment:    at(config.ColComment),
			IsOrder:    parseOrderFlag(at(config.ColIsOrder)),
			Amount:     amount,
		},
	}, true
}
