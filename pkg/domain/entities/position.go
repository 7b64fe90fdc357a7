package entities

import (
	"strconv"
	"strings"
)

// Position is the dotted numeric path of a specification row, e.g. "1.3.2"
// parses to [1 3 2]. A position is never empty and is not mutated after
// construction.
type Position []int

// ParsePosition parses the raw position cell into a Position. Decimal commas
// are normalized to dots first, since the position column of exported sheets
// sometimes carries locale-formatted numbers.
func ParsePosition(raw string) (Position, error) {
	text := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if text == "" {
		return nil, &MalformedPositionError{Raw: raw}
	}

	segments := strings.Split(text, ".")
	pos := make(Position, 0, len(segments))
	for _, segment := range segments {
		n, err := strconv.Atoi(segment)
		if err != nil || n < 0 {
			return nil, &MalformedPositionError{Raw: raw}
		}
		pos = append(pos, n)
	}
	return pos, nil
}

// IsImmediateChildOf reports whether p sits directly under parent: exactly
// one level deeper and equal to parent on every shared component.
func (p Position) IsImmediateChildOf(parent Position) bool {
	if len(parent) == 0 || len(p) != len(parent)+1 {
		return false
	}
	for i := range parent {
		if p[i] != parent[i] {
			return false
		}
	}
	return true
}

// Equal reports component-wise equality.
func (p Position) Equal(other Position) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Parent returns the position one level up, or nil for a top-level position.
func (p Position) Parent() Position {
	if len(p) <= 1 {
		return nil
	}
	return p[:len(p)-1]
}

// String renders the position back in dotted form.
func (p Position) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}
