package entities

import (
	"errors"
	"testing"
)

func TestParseCategory_Vocabulary(t *testing.T) {
	tests := []struct {
		raw  string
		want Category
	}{
		{"детали", Detail},
		{"сборочные единицы", AssemblyUnit},
		{"сборочная единица", AssemblyUnit}, // singular synonym
		{"прочие изделия", OtherItem},
		{"стандартные изделия", StandardItem},
		{"материалы", MaterialItem},
		{"ДЕТАЛИ", Detail},             // case-insensitive
		{"  Сборочные Единицы ", AssemblyUnit},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.raw)
		if err != nil {
			t.Errorf("ParseCategory(%q) returned error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseCategory_Missing(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		_, err := ParseCategory(raw)
		if !errors.Is(err, ErrMissingCategory) {
			t.Errorf("ParseCategory(%q) = %v, want ErrMissingCategory", raw, err)
		}
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	_, err := ParseCategory("чертежи")
	var unknown *UnknownCategoryError
	if !errors.As(err, &unknown) {
		t.Fatalf("ParseCategory returned %v, want *UnknownCategoryError", err)
	}
	if unknown.Value != "чертежи" {
		t.Errorf("UnknownCategoryError.Value = %q, want %q", unknown.Value, "чертежи")
	}
}

func TestCategory_SectionOrder(t *testing.T) {
	// The absolute sheet is sorted by this declaration order.
	order := []Category{Detail, AssemblyUnit, OtherItem, StandardItem, MaterialItem}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("category %v should sort before %v", order[i-1], order[i])
		}
	}
}
