package entities

import "github.com/shopspring/decimal"

// Part is one record of the specification tree. A part whose category is
// AssemblyUnit carries child records in Components and may nest to arbitrary
// depth; for every other category Components stays nil. Each part is owned
// by exactly one parent assembly, or by the forest root list.
type Part struct {
	Position   Position
	Name       string
	Category   Category
	Code       string
	WorkFile   string
	MakingType string
	Material   string
	Comment    string
	IsOrder    bool

	// Amount is the quantity per one immediate parent. CountInDevice is the
	// cumulative quantity per top-level device; it starts equal to Amount
	// and is scaled by the parent's CountInDevice on attachment.
	Amount        decimal.Decimal
	CountInDevice decimal.Decimal

	Components []*Part
}

// NewPart builds a Part from a sanitized row, resolving its position and
// category. The returned error is one of the row-level kinds: the caller
// logs it and moves on to the next row.
func NewPart(row Row) (*Part, error) {
	position, err := ParsePosition(row.Position)
	if err != nil {
		return nil, err
	}
	category, err := ParseCategory(row.Category)
	if err != nil {
		return nil, err
	}

	return &Part{
		Position:      position,
		Name:          row.Name,
		Category:      category,
		Code:          row.Code,
		WorkFile:      row.WorkFile,
		MakingType:    row.MakingType,
		Material:      row.Material,
		Comment:       row.Comment,
		IsOrder:       row.IsOrder,
		Amount:        row.Amount,
		CountInDevice: row.Amount,
	}, nil
}

// IsAssembly reports whether the part can hold child records.
func (p *Part) IsAssembly() bool {
	return p.Category == AssemblyUnit
}

// Depth is the nesting level implied by the position path; top-level parts
// have depth 1.
func (p *Part) Depth() int {
	return len(p.Position)
}
