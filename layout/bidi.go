package layout

// lineItem is a child index inside a flow line with its content direction.
type lineItem struct {
	index int
	dir   Direction
}

// reorderLine returns the visual order of the items of one flow line.
//
// This is local reordering only, not the Unicode bidi algorithm: the line
// direction is the direction of the first item; items of the line direction
// are appended (LTR) or prepended (RTL, neutral), and items of another
// direction are inserted next to the last insertion point:
//
//	item \ line   LTR         RTL         neutral
//	LTR           append      after last  after last
//	RTL           before last prepend     before last
//	neutral       after last  before last prepend
//
// A line of neutral items therefore comes out reversed.
func reorderLine(items []lineItem) []int {
	order := make([]int, 0, len(items))
	if len(items) == 0 {
		return order
	}
	lineDir := items[0].dir
	order = append(order, items[0].index)
	last := 0

	for _, it := range items[1:] {
		if it.dir == lineDir {
			if lineDir == DirectionLTR {
				order = append(order, it.index)
				last = len(order) - 1
			} else {
				order = insertAt(order, 0, it.index)
				last = 0
			}
			continue
		}

		switch {
		case it.dir == DirectionLTR,
			it.dir == DirectionNeutral && lineDir == DirectionLTR:
			last++
			order = insertAt(order, last, it.index)
		default:
			order = insertAt(order, last, it.index)
		}
	}
	return order
}

func insertAt(s []int, pos, v int) []int {
	s = append(s, 0)
	copy(s[pos+1:], s[pos:])
	s[pos] = v
	return s
}
