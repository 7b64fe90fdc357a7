package entities

import "strings"

// Category classifies a specification row into one of the fixed sections of
// an engineering specification. The declaration order is the section order
// of the absolute sheet.
type Category int

const (
	Detail Category = iota
	AssemblyUnit
	OtherItem
	StandardItem
	MaterialItem
)

// categoryNames maps every accepted spelling to its canonical category. The
// assembly section appears in source sheets under both the plural and the
// singular spelling.
var categoryNames = map[string]Category{
	"детали":              Detail,
	"сборочные единицы":   AssemblyUnit,
	"сборочная единица":   AssemblyUnit,
	"прочие изделия":      OtherItem,
	"стандартные изделия": StandardItem,
	"материалы":           MaterialItem,
}

// ParseCategory resolves the raw category cell against the known vocabulary,
// case-insensitively. A blank cell yields ErrMissingCategory, an
// unrecognized one an UnknownCategoryError.
func ParseCategory(raw string) (Category, error) {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return 0, ErrMissingCategory
	}
	category, ok := categoryNames[text]
	if !ok {
		return 0, &UnknownCategoryError{Value: raw}
	}
	return category, nil
}

// String returns the canonical section label as written in output sheets.
func (c Category) String() string {
	switch c {
	case Detail:
		return "детали"
	case AssemblyUnit:
		return "сборочные единицы"
	case OtherItem:
		return "прочие изделия"
	case StandardItem:
		return "стандартные изделия"
	case MaterialItem:
		return "материалы"
	default:
		return "неизвестно"
	}
}
