package entities

import "github.com/shopspring/decimal"

// Row is one sanitized input line as delivered by the spreadsheet reader:
// cells are trimmed, line breaks collapsed and placeholder blanks emptied
// before a Row is constructed.
type Row struct {
	Line       int // 1-based row number in the source sheet, for log messages
	Position   string
	Name       string
	Category   string
	Code       string
	WorkFile   string
	MakingType string
	Material   string
	Comment    string
	IsOrder    bool
	Amount     decimal.Decimal // quantity per one immediate parent
}
