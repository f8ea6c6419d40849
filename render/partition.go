package render

import "fmt"

// WorkRange is the contiguous span of rows [Top, Top+Rows) owned by one
// worker.
type WorkRange struct {
	Top, Rows int
}

// End returns the first row after the range.
func (r WorkRange) End() int { return r.Top + r.Rows }

func (r WorkRange) String() string {
	return fmt.Sprintf("rows [%d, %d)", r.Top, r.End())
}

// Partition splits height rows into at most workers ranges whose sizes differ
// by at most one row; the first height%n ranges get the extra row. Ranges are
// ordered, pairwise disjoint and cover [0, height). No empty range is
// returned, so fewer than workers ranges come back when workers > height.
func Partition(height, workers int) []WorkRange {
	if height <= 0 {
		return nil
	}
	n := min(max(workers, 1), height)
	base, extra := height/n, height%n

	ranges := make([]WorkRange, 0, n)
	top := 0
	for i := range n {
		rows := base
		if i < extra {
			rows++
		}
		ranges = append(ranges, WorkRange{Top: top, Rows: rows})
		top += rows
	}
	return ranges
}
