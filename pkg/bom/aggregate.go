package bom

import "github.com/averin/bomsheet/pkg/domain/entities"

// Totals maps a part name to its cumulative snapshot. When the same name
// occurs at several positions in the tree, the snapshots' counts are summed,
// never overwritten. A Totals map lives for exactly one input file.
type Totals map[string]*entities.Part

// Record folds the part's count-in-device into the running total for its
// name. The part itself is not retained: the map holds a flat snapshot with
// the child list dropped, so later tree growth cannot alias into it.
func (t Totals) Record(part *entities.Part) {
	if existing, ok := t[part.Name]; ok {
		existing.CountInDevice = existing.CountInDevice.Add(part.CountInDevice)
		return
	}
	snapshot := *part
	snapshot.Components = nil
	t[part.Name] = &snapshot
}
