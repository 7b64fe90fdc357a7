// Package config holds the file-format conventions of the specification
// sheets: required column headers, output naming and sheet titles. The
// compiled defaults match the sheets exported by the CAD system; a YAML file
// can override any of them for differently labelled exports.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one flavor of specification sheet.
//
// RequiredColumns is ordered by meaning, not by sheet layout: position,
// name, code, work file, category, making type, material, make-or-buy flag,
// amount, comment. Overrides must preserve that order.
type Config struct {
	RequiredColumns []string `yaml:"required_columns"`
	DroppedColumns  []string `yaml:"dropped_columns"`
	WorkFormats     []string `yaml:"work_formats"`
	FinalSuffix     string   `yaml:"final_suffix"`
	LogSuffix       string   `yaml:"log_suffix"`
	RelativeSheet   string   `yaml:"relative_sheet"`
	AbsoluteSheet   string   `yaml:"absolute_sheet"`
}

// Indexes into RequiredColumns by meaning.
const (
	ColPosition = iota
	ColName
	ColCode
	ColWorkFile
	ColCategory
	ColMakingType
	ColMaterial
	ColIsOrder
	ColAmount
	ColComment
)

// Default returns the conventions of the standard export.
func Default() *Config {
	return &Config{
		RequiredColumns: []string{
			"уровень",
			"наименование",
			"обозначение",
			"имя_рабочего_файла",
			"раздел",
			"способ изготовления",
			"материал",
			"заказ на стороне",
			"количество",
			"примечание",
		},
		DroppedColumns: []string{"part number"},
		WorkFormats:    []string{".xlsx", ".xls"},
		FinalSuffix:    "_ОТРЕДАКТИРОВАННЫЙ",
		LogSuffix:      "_ЛОГ.txt",
		RelativeSheet:  "Относительная спецификация",
		AbsoluteSheet:  "Абсолютная спецификация",
	}
}

// Load reads a YAML override file on top of the defaults. Keys absent from
// the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if len(cfg.RequiredColumns) != len(Default().RequiredColumns) {
		return nil, fmt.Errorf("config %s: required_columns must list %d columns, got %d",
			path, len(Default().RequiredColumns), len(cfg.RequiredColumns))
	}
	return cfg, nil
}
