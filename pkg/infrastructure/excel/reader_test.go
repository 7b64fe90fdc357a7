package excel

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/averin/bomsheet/pkg/config"
)

// writeFixture saves a minimal input workbook and returns its path.
func writeFixture(t *testing.T, header []interface{}, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatalf("failed to write fixture header: %v", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("failed to address fixture row: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("failed to write fixture row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save fixture: %v", err)
	}
	return path
}

func fixtureHeader() []interface{} {
	return []interface{}{
		"уровень", "наименование", "обозначение", "имя_рабочего_файла",
		"раздел", "способ изготовления", "материал", "заказ на стороне",
		"количество", "примечание", "PART NUMBER",
	}
}

func TestReader_Read(t *testing.T) {
	path := writeFixture(t, fixtureHeader(), [][]interface{}{
		{"1", "Изделие", "АБВ.01", "device.asm", "сборочные единицы", "", "", "", "1", "", "PN-1"},
		{"1.1", "Вал \nведущий", "АБВ.02", "shaft.prt", "детали", "точение", "Сталь 40Х", "да", "2", "см. примечание", "PN-2"},
		{"", "", "", "", "", "", "", "", "", "", ""}, // fully blank, dropped
		{"1,2", "Болт М8", "", "", "стандартные изделия", "", "", "", "4", "", "PN-3"},
	})

	reader := NewReader(config.Default(), nil)
	doc, err := reader.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	// The PART NUMBER column is dropped from the kept columns.
	if len(doc.Columns) != 10 {
		t.Fatalf("kept %d columns, want 10: %v", len(doc.Columns), doc.Columns)
	}
	for _, column := range doc.Columns {
		if column == "PART NUMBER" {
			t.Error("dropped column still present")
		}
	}

	if len(doc.Rows) != 3 {
		t.Fatalf("got %d rows, want 3 (blank row dropped)", len(doc.Rows))
	}

	shaft := doc.Rows[1].Row
	if shaft.Name != "Вал ведущий" {
		t.Errorf("Name = %q, want line break collapsed", shaft.Name)
	}
	if !shaft.IsOrder {
		t.Error("IsOrder = false, want true for \"да\"")
	}
	if shaft.Amount.String() != "2" {
		t.Errorf("Amount = %s, want 2", shaft.Amount)
	}

	// Decimal comma in the position column survives to the builder, which
	// normalizes it during position parsing.
	if doc.Rows[2].Row.Position != "1,2" {
		t.Errorf("Position = %q, want raw cell text", doc.Rows[2].Row.Position)
	}
}

func TestReader_Read_MissingColumns(t *testing.T) {
	path := writeFixture(t,
		[]interface{}{"уровень", "наименование"},
		[][]interface{}{{"1", "Изделие"}},
	)

	reader := NewReader(config.Default(), nil)
	_, err := reader.Read(path)
	var missing *MissingColumnsError
	if !errors.As(err, &missing) {
		t.Fatalf("Read returned %v, want *MissingColumnsError", err)
	}
	if len(missing.Missing) != 8 {
		t.Errorf("reported %d missing columns, want 8: %v", len(missing.Missing), missing.Missing)
	}
}

func TestReader_Read_WrappedHeaders(t *testing.T) {
	header := fixtureHeader()
	header[1] = "наименование\n" // wrapped header cell still matches
	path := writeFixture(t, header, [][]interface{}{
		{"1", "Изделие", "", "", "сборочные единицы", "", "", "", "1", "", ""},
	})

	reader := NewReader(config.Default(), nil)
	doc, err := reader.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if doc.Rows[0].Row.Name != "Изделие" {
		t.Errorf("Name = %q, want %q", doc.Rows[0].Row.Name, "Изделие")
	}
}

func TestReader_Read_BadAmountSkipsRow(t *testing.T) {
	path := writeFixture(t, fixtureHeader(), [][]interface{}{
		{"1", "Изделие", "", "", "сборочные единицы", "", "", "", "1", "", ""},
		{"1.1", "Сломанный", "", "", "детали", "", "", "", "шесть", "", ""},
		{"1.2", "Целый", "", "", "детали", "", "", "", "6", "", ""},
	})

	reader := NewReader(config.Default(), nil)
	doc, err := reader.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(doc.Rows) != 2 {
		t.Fatalf("got %d rows, want 2 (bad amount skipped)", len(doc.Rows))
	}
	if doc.Rows[1].Row.Name != "Целый" {
		t.Error("row after the skipped one was lost")
	}
}
