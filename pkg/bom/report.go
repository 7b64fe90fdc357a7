package bom

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/averin/bomsheet/pkg/domain/entities"
)

// ReportRow is one line of the absolute specification: a distinct part name
// with its total count per device. Structural fields (position, child list,
// per-parent amount) are deliberately absent.
type ReportRow struct {
	Name          string
	Code          string
	WorkFile      string
	Category      entities.Category
	MakingType    string
	Material      string
	IsOrder       bool
	CountInDevice decimal.Decimal
	Comment       string
}

// BuildReport flattens the totals into the absolute view, sorted by category
// in section order and then by name. Names are unique by construction of the
// totals map, so the order is deterministic.
func BuildReport(totals Totals) []ReportRow {
	rows := make([]ReportRow, 0, len(totals))
	for _, part := range totals {
		rows = append(rows, ReportRow{
			Name:          part.Name,
			Code:          part.Code,
			WorkFile:      part.WorkFile,
			Category:      part.Category,
			MakingType:    part.MakingType,
			Material:      part.Material,
			IsOrder:       part.IsOrder,
			CountInDevice: part.CountInDevice,
			Comment:       part.Comment,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Category != rows[j].Category {
			return rows[i].Category < rows[j].Category
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
