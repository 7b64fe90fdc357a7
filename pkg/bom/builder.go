// Package bom rebuilds the assembly forest implied by a specification's
// dotted position numbers and accumulates per-part totals for the whole
// device.
package bom

import (
	"go.uber.org/zap"

	"github.com/averin/bomsheet/pkg/domain/entities"
)

// Builder consumes sanitized rows in file order and grows the assembly
// forest. A Builder is single-use: construct one per input file, feed every
// row through Attach and read the forest and totals afterwards.
type Builder struct {
	roots  []*entities.Part
	parts  []*entities.Part // arrival order, backs the relative view
	totals Totals
	log    *zap.Logger
}

// NewBuilder creates an empty Builder. A nil logger is replaced with a nop
// logger.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		totals: make(Totals),
		log:    log,
	}
}

// Attach classifies the row, inserts it into the forest and records its
// contribution to the per-name totals. On a row-level error the forest and
// totals are left untouched and the error is returned for the caller to log;
// subsequent rows are unaffected.
func (b *Builder) Attach(row entities.Row) (*entities.Part, error) {
	part, err := entities.NewPart(row)
	if err != nil {
		return nil, err
	}

	if parent := findParent(b.roots, part.Position); parent != nil {
		parent.Components = append(parent.Components, part)
		part.CountInDevice = parent.CountInDevice.Mul(part.Amount)
	} else {
		// No assembly in the forest owns this position: the record becomes
		// a new top-level root with an implicit multiplier of 1. For nested
		// positions that usually means the parent row was dropped or is out
		// of order, so it is worth a warning.
		if len(part.Position) > 1 {
			b.log.Warn("no parent assembly found, promoting to top level",
				zap.Int("row", row.Line),
				zap.String("position", part.Position.String()),
				zap.String("parent", part.Position.Parent().String()),
				zap.String("name", part.Name))
		}
		b.roots = append(b.roots, part)
	}

	b.parts = append(b.parts, part)
	b.totals.Record(part)
	return part, nil
}

// findParent searches the forest depth-first, in child-list order, for the
// assembly that is the immediate parent of pos. The first match wins.
func findParent(parts []*entities.Part, pos entities.Position) *entities.Part {
	for _, part := range parts {
		if !part.IsAssembly() {
			continue
		}
		if pos.IsImmediateChildOf(part.Position) {
			return part
		}
		if found := findParent(part.Components, pos); found != nil {
			return found
		}
	}
	return nil
}

// Roots returns the top-level parts of the forest in arrival order.
func (b *Builder) Roots() []*entities.Part {
	return b.roots
}

// Parts returns every successfully attached part in arrival order.
func (b *Builder) Parts() []*entities.Part {
	return b.parts
}

// Totals returns the per-name aggregation map built so far.
func (b *Builder) Totals() Totals {
	return b.totals
}
