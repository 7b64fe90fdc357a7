// Package services wires the reading, tree building and writing stages into
// the per-file processing pipeline.
package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/averin/bomsheet/pkg/bom"
	"github.com/averin/bomsheet/pkg/config"
	"github.com/averin/bomsheet/pkg/domain/entities"
	"github.com/averin/bomsheet/pkg/infrastructure/excel"
	"github.com/averin/bomsheet/pkg/infrastructure/logging"
)

// FileResult summarizes one processed input file.
type FileResult struct {
	Input    string
	Output   string
	Attached int
	Skipped  int
	Roots    []*entities.Part
	Report   []bom.ReportRow
}

// SpecService processes specification workbooks one at a time. The forest
// and totals are built fresh per file and discarded after the output
// workbook is written.
type SpecService struct {
	cfg     *config.Config
	verbose bool
}

// NewSpecService creates a SpecService.
func NewSpecService(cfg *config.Config, verbose bool) *SpecService {
	return &SpecService{cfg: cfg, verbose: verbose}
}

// ProcessDir discovers input workbooks in dir and processes each to
// completion. A file that fails validation is logged and skipped; it never
// aborts the batch.
func (s *SpecService) ProcessDir(ctx context.Context, dir string) error {
	log, err := logging.NewConsoleLogger(s.verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	files, err := s.ListFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Info("no input workbooks found", zap.String("dir", dir))
		return nil
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.ProcessFile(ctx, file); err != nil {
			var missing *excel.MissingColumnsError
			if errors.As(err, &missing) {
				log.Error("file does not match the expected format, skipping",
					zap.String("file", file), zap.Error(err))
				continue
			}
			return fmt.Errorf("failed to process %s: %w", file, err)
		}
	}
	return nil
}

// ListFiles returns the workbooks in dir that carry a supported extension
// and are not themselves earlier outputs of this program.
func (s *SpecService) ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !s.workFormat(ext) {
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if strings.HasSuffix(stem, s.cfg.FinalSuffix) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}

func (s *SpecService) workFormat(ext string) bool {
	for _, format := range s.cfg.WorkFormats {
		if ext == format {
			return true
		}
	}
	return false
}

// ProcessFile runs the whole pipeline for one workbook: read and sanitize,
// rebuild the assembly forest row by row, and write the relative and
// absolute sheets. Row-level errors are logged and skipped per the
// skip-and-continue policy.
func (s *SpecService) ProcessFile(ctx context.Context, path string) (*FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log, err := logging.NewFileLogger(s.logPath(path), s.verbose)
	if err != nil {
		return nil, err
	}
	defer log.Sync()
	log.Info("processing workbook", zap.String("file", path))

	reader := excel.NewReader(s.cfg, log)
	doc, err := reader.Read(path)
	if err != nil {
		return nil, err
	}

	builder := bom.NewBuilder(log)
	relative := make([]excel.RelativeRow, 0, len(doc.Rows))
	skipped := 0
	for _, rd := range doc.Rows {
		part, err := builder.Attach(rd.Row)
		if err != nil {
			log.Error("skipping row", zap.Int("row", rd.Line), zap.Error(err))
			skipped++
			continue
		}
		relative = append(relative, excel.RelativeRow{
			Cells:   rd.Cells,
			Outline: part.Depth() - 1,
		})
	}

	report := bom.BuildReport(builder.Totals())

	writer := excel.NewWriter(s.cfg, log)
	output := writer.OutputPath(path)
	if err := writer.Write(output, doc.Columns, relative, report); err != nil {
		return nil, err
	}

	log.Info("finished workbook",
		zap.Int("attached", len(relative)),
		zap.Int("skipped", skipped),
		zap.Int("unique_parts", len(report)))

	return &FileResult{
		Input:    path,
		Output:   output,
		Attached: len(relative),
		Skipped:  skipped,
		Roots:    builder.Roots(),
		Report:   report,
	}, nil
}

// logPath places the per-file log next to the input workbook.
func (s *SpecService) logPath(src string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(filepath.Dir(src), base+s.cfg.LogSuffix)
}
