package excel

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/averin/bomsheet/pkg/domain/entities"
)

// blankValues are the placeholder strings the source sheets use for an empty
// cell.
var blankValues = map[string]struct{}{
	"":  {},
	"-": {},
}

// truthyValues are the spellings of "yes" accepted in the make-or-buy column.
var truthyValues = map[string]struct{}{
	"да":     {},
	"+":      {},
	"1":      {},
	"true":   {},
	"истина": {},
}

// CleanCell normalizes one cell of free text: embedded line breaks become
// spaces, runs of whitespace collapse, placeholder blanks become the empty
// string.
func CleanCell(raw string) string {
	text := strings.Join(strings.Fields(raw), " ")
	if _, blank := blankValues[text]; blank {
		return ""
	}
	return text
}

// cleanHeader normalizes a header cell for comparison against the required
// column set: line breaks removed entirely, trimmed, lowercased.
func cleanHeader(raw string) string {
	text := strings.ReplaceAll(raw, "\n", "")
	text = strings.ReplaceAll(text, "\r", "")
	return strings.ToLower(strings.TrimSpace(text))
}

// parseOrderFlag interprets the make-or-buy cell; anything outside the
// truthy set, including a blank cell, means made in house.
func parseOrderFlag(raw string) bool {
	_, ok := truthyValues[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// parseAmount parses the quantity cell, tolerating decimal commas.
func parseAmount(raw string) (decimal.Decimal, error) {
	text := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, &entities.MalformedAmountError{Raw: raw}
	}
	return amount, nil
}
