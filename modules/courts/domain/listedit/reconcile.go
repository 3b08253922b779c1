// Package listedit implements the reconciliation rules shared by every
// editable list tab. After any edit, a list contains all real rows in their
// original order followed by exactly one blank template row for new input.
package listedit

// Row is any editable list entry that can report whether it carries data.
type Row interface {
	Blank() bool
}

// Reconcile drops every blank row from posted and appends a single fresh
// template row. Applying it twice yields the same result as applying it once.
func Reconcile[T Row](posted []T, blank func() T) []T {
	out := make([]T, 0, len(posted)+1)
	for _, row := range posted {
		if row.Blank() {
			continue
		}
		out = append(out, row)
	}
	return append(out, blank())
}

// RealIndex maps an index into a posted list onto the row's position once
// blank rows are dropped. It returns -1 when the index is out of range or
// names a blank row, so a move aimed at a cleared row is a no-op rather than
// landing on its neighbour.
func RealIndex[T Row](posted []T, index int) int {
	if index < 0 || index >= len(posted) || posted[index].Blank() {
		return -1
	}
	n := 0
	for i := 0; i < index; i++ {
		if !posted[i].Blank() {
			n++
		}
	}
	return n
}

// RealCount returns the number of rows carrying data.
func RealCount[T Row](rows []T) int {
	n := 0
	for _, row := range rows {
		if !row.Blank() {
			n++
		}
	}
	return n
}

// MoveUp swaps rows[index] with its predecessor. Moves involving the first
// row, an out-of-range index or a blank row are no-ops.
func MoveUp[T Row](rows []T, index int) {
	if index <= 0 || index >= len(rows) {
		return
	}
	if rows[index].Blank() || rows[index-1].Blank() {
		return
	}
	rows[index], rows[index-1] = rows[index-1], rows[index]
}

// MoveDown swaps rows[index] with its successor. The blank template row never
// participates, so the last real row cannot be pushed past it.
func MoveDown[T Row](rows []T, index int) {
	if index < 0 || index+1 >= len(rows) {
		return
	}
	if rows[index].Blank() || rows[index+1].Blank() {
		return
	}
	rows[index], rows[index+1] = rows[index+1], rows[index]
}
