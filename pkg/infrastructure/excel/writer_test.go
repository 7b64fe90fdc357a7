package excel

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/averin/bomsheet/pkg/bom"
	"github.com/averin/bomsheet/pkg/config"
	"github.com/averin/bomsheet/pkg/domain/entities"
)

func TestWriter_Write(t *testing.T) {
	cfg := config.Default()
	writer := NewWriter(cfg, nil)

	columns := []string{"уровень", "наименование", "количество"}
	relative := []RelativeRow{
		{Cells: []string{"1", "Изделие", "1"}, Outline: 0},
		{Cells: []string{"1.1", "Вал", "2"}, Outline: 1},
	}
	report := []bom.ReportRow{
		{
			Name:          "Вал",
			Category:      entities.Detail,
			Material:      "Сталь 40Х",
			CountInDevice: decimal.NewFromInt(2),
		},
		{
			Name:          "Изделие",
			Category:      entities.AssemblyUnit,
			CountInDevice: decimal.NewFromInt(1),
		},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := writer.Write(path, columns, relative, report); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen output: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{cfg.RelativeSheet, cfg.AbsoluteSheet} {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			t.Fatalf("output is missing sheet %q", sheet)
		}
	}

	relRows, err := f.GetRows(cfg.RelativeSheet)
	if err != nil {
		t.Fatalf("failed to read relative sheet: %v", err)
	}
	if len(relRows) != 3 {
		t.Fatalf("relative sheet has %d rows, want header + 2", len(relRows))
	}
	if relRows[0][1] != "наименование" {
		t.Errorf("relative header[1] = %q, want %q", relRows[0][1], "наименование")
	}
	if relRows[2][1] != "Вал" {
		t.Errorf("relative row 3 name = %q, want %q", relRows[2][1], "Вал")
	}

	absRows, err := f.GetRows(cfg.AbsoluteSheet)
	if err != nil {
		t.Fatalf("failed to read absolute sheet: %v", err)
	}
	if len(absRows) != 3 {
		t.Fatalf("absolute sheet has %d rows, want header + 2", len(absRows))
	}
	if absRows[1][0] != "Вал" {
		t.Errorf("absolute row 2 name = %q, want %q", absRows[1][0], "Вал")
	}
	if absRows[1][3] != "детали" {
		t.Errorf("absolute row 2 category = %q, want %q", absRows[1][3], "детали")
	}
	if absRows[1][7] != "2" {
		t.Errorf("absolute row 2 count = %q, want %q", absRows[1][7], "2")
	}
}

func TestWriter_OutputPath(t *testing.T) {
	writer := NewWriter(config.Default(), nil)
	got := writer.OutputPath(filepath.Join("work", "Спецификация.xls"))
	want := filepath.Join("work", "Спецификация_ОТРЕДАКТИРОВАННЫЙ.xlsx")
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}
