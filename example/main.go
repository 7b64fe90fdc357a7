package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/averin/bomsheet/pkg/bom"
	"github.com/averin/bomsheet/pkg/domain/entities"
)

func main() {
	// Feed a small specification through the tree builder the way the file
	// pipeline does, without touching a spreadsheet.
	rows := []entities.Row{
		{Line: 2, Position: "1", Name: "Лебёдка", Category: "сборочные единицы", Amount: decimal.NewFromInt(1)},
		{Line: 3, Position: "1.1", Name: "Барабан", Category: "сборочные единицы", Amount: decimal.NewFromInt(2)},
		{Line: 4, Position: "1.1.1", Name: "Вал", Category: "детали", Material: "Сталь 40Х", Amount: decimal.NewFromInt(1)},
		{Line: 5, Position: "1.1.2", Name: "Болт М8", Category: "стандартные изделия", Amount: decimal.NewFromInt(6)},
		{Line: 6, Position: "1.2", Name: "Болт М8", Category: "стандартные изделия", Amount: decimal.NewFromInt(4)},
	}

	builder := bom.NewBuilder(nil)
	for _, row := range rows {
		if _, err := builder.Attach(row); err != nil {
			fmt.Printf("row %d skipped: %v\n", row.Line, err)
		}
	}

	fmt.Println("Absolute specification:")
	for _, line := range bom.BuildReport(builder.Totals()) {
		fmt.Printf("  %-28s %-22s %8s\n", line.Name, line.Category, line.CountInDevice)
	}
}
