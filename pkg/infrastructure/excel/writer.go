package excel

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/averin/bomsheet/pkg/bom"
	"github.com/averin/bomsheet/pkg/config"
)

// absoluteHeader is the domain-facing header of the absolute sheet.
var absoluteHeader = []string{
	"наименование",
	"обозначение",
	"имя_рабочего_файла",
	"раздел",
	"способ изготовления",
	"материал",
	"заказ на стороне",
	"количество на изделие",
	"примечание",
}

// RelativeRow is one line of the relative sheet: the kept cells of an
// attached input row plus its assembly nesting depth for outline grouping
// (0 for a top-level record).
type RelativeRow struct {
	Cells   []string
	Outline int
}

// Writer produces the reformatted workbook.
type Writer struct {
	cfg *config.Config
	log *zap.Logger
}

// NewWriter creates a Writer. A nil logger is replaced with a nop logger.
func NewWriter(cfg *config.Config, log *zap.Logger) *Writer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{cfg: cfg, log: log}
}

// OutputPath derives the reformatted file's path from the source path:
// same directory, same base name plus the final suffix, always .xlsx.
func (w *Writer) OutputPath(src string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(filepath.Dir(src), base+w.cfg.FinalSuffix+".xlsx")
}

// Write saves the two output sheets: the relative sheet with the rows in
// input order and outline grouping by assembly depth, and the absolute sheet
// with one line per distinct part name.
func (w *Writer) Write(path string, columns []string, relative []RelativeRow, report []bom.ReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", w.cfg.RelativeSheet); err != nil {
		return fmt.Errorf("failed to name relative sheet: %w", err)
	}
	if _, err := f.NewSheet(w.cfg.AbsoluteSheet); err != nil {
		return fmt.Errorf("failed to create absolute sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{WrapText: true, Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create cell style: %w", err)
	}

	if err := w.writeRelative(f, columns, relative, headerStyle, cellStyle); err != nil {
		return err
	}
	if err := w.writeAbsolute(f, report, headerStyle, cellStyle); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	w.log.Info("wrote reformatted workbook",
		zap.String("path", path),
		zap.Int("relative_rows", len(relative)),
		zap.Int("absolute_rows", len(report)))
	return nil
}

func (w *Writer) writeRelative(f *excelize.File, columns []string, rows []RelativeRow, headerStyle, cellStyle int) error {
	sheet := w.cfg.RelativeSheet
	if err := writeHeader(f, sheet, columns, headerStyle); err != nil {
		return err
	}

	widths := newColumnWidths(columns)
	for i, row := range rows {
		line := i + 2
		values := make([]interface{}, len(row.Cells))
		for n, cell := range row.Cells {
			values[n] = cell
			widths.observe(n, cell)
		}
		anchor, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return fmt.Errorf("failed to address relative row %d: %w", line, err)
		}
		if err := f.SetSheetRow(sheet, anchor, &values); err != nil {
			return fmt.Errorf("failed to write relative row %d: %w", line, err)
		}
		// Rows under an assembly fold into its outline group. Excel caps
		// outline nesting at 7 levels.
		level := row.Outline
		if level > 7 {
			level = 7
		}
		if level > 0 {
			if err := f.SetRowOutlineLevel(sheet, line, uint8(level)); err != nil {
				return fmt.Errorf("failed to set outline on row %d: %w", line, err)
			}
		}
	}

	return finishSheet(f, sheet, widths, len(rows), len(columns), cellStyle)
}

func (w *Writer) writeAbsolute(f *excelize.File, report []bom.ReportRow, headerStyle, cellStyle int) error {
	sheet := w.cfg.AbsoluteSheet
	if err := writeHeader(f, sheet, absoluteHeader, headerStyle); err != nil {
		return err
	}

	widths := newColumnWidths(absoluteHeader)
	for i, row := range report {
		line := i + 2
		count, _ := row.CountInDevice.Float64()
		order := ""
		if row.IsOrder {
			order = "да"
		}
		cells := []string{
			row.Name,
			row.Code,
			row.WorkFile,
			row.Category.String(),
			row.MakingType,
			row.Material,
			order,
			"", // count written separately as a number
			row.Comment,
		}
		values := make([]interface{}, len(cells))
		for n, cell := range cells {
			values[n] = cell
			widths.observe(n, cell)
		}
		values[7] = count

		anchor, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return fmt.Errorf("failed to address absolute row %d: %w", line, err)
		}
		if err := f.SetSheetRow(sheet, anchor, &values); err != nil {
			return fmt.Errorf("failed to write absolute row %d: %w", line, err)
		}
	}

	return finishSheet(f, sheet, widths, len(report), len(absoluteHeader), cellStyle)
}

func writeHeader(f *excelize.File, sheet string, columns []string, style int) error {
	values := make([]interface{}, len(columns))
	for i, column := range columns {
		values[i] = column
	}
	if err := f.SetSheetRow(sheet, "A1", &values); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", sheet, err)
	}
	end, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", end, style); err != nil {
		return fmt.Errorf("failed to style header of %s: %w", sheet, err)
	}
	return nil
}

// finishSheet applies the wrapped-text style to the data area and sizes
// every column to its widest observed value.
func finishSheet(f *excelize.File, sheet string, widths *columnWidths, rows, cols, cellStyle int) error {
	if rows > 0 {
		end, err := excelize.CoordinatesToCellName(cols, rows+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A2", end, cellStyle); err != nil {
			return fmt.Errorf("failed to style data of %s: %w", sheet, err)
		}
	}
	for i, width := range widths.max {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return fmt.Errorf("failed to size column %s of %s: %w", name, sheet, err)
		}
	}
	return nil
}

// columnWidths tracks the widest value seen per column, clamped to keep the
// sheet readable.
type columnWidths struct {
	max []float64
}

func newColumnWidths(header []string) *columnWidths {
	w := &columnWidths{max: make([]float64, len(header))}
	for i, column := range header {
		w.max[i] = 10
		w.observe(i, column)
	}
	return w
}

func (w *columnWidths) observe(col int, value string) {
	if col >= len(w.max) {
		return
	}
	width := float64(len([]rune(value))) + 2
	if width > 60 {
		width = 60
	}
	if width > w.max[col] {
		w.max[col] = width
	}
}
