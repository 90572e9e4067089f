package tui

import (
	"time"

	"github.com/warit/safeboard/internal/calendar"
	"github.com/warit/safeboard/internal/layout"
	"github.com/warit/safeboard/internal/models"
)

// Rect is a cell-addressed region of the terminal.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// headerHeight and footerHeight are the fixed chrome rows above and below
// the panel grid.
const (
	headerHeight = 3
	footerHeight = 1
)

// boardArea is the region the panel grid occupies.
func boardArea(width, height int) Rect {
	h := height - headerHeight - footerHeight
	if h < 0 {
		h = 0
	}
	return Rect{X: 0, Y: headerHeight, W: width, H: h}
}

// split partitions length cells across percentage shares. The last share
// absorbs rounding leftovers so the pieces always tile exactly.
func split(length int, shares []float64) []int {
	out := make([]int, len(shares))
	used := 0
	for i, pct := range shares {
		if i == len(shares)-1 {
			out[i] = length - used
			break
		}
		w := int(float64(length)*pct/100.0 + 0.5)
		if w < 0 {
			w = 0
		}
		if used+w > length {
			w = length - used
		}
		out[i] = w
		used += w
	}
	if len(out) > 0 && out[len(out)-1] < 0 {
		out[len(out)-1] = 0
	}
	return out
}

// columnGroup maps a column index onto its row group.
func columnGroup(col int) layout.GroupID {
	switch col {
	case 0:
		return layout.GroupLeftRows
	case 1:
		return layout.GroupCenterRows
	default:
		return layout.GroupRightRows
	}
}

// slotsByColumn lists the slots of each column top to bottom.
var slotsByColumn = [3][]models.Slot{
	{models.SlotLeftTop, models.SlotLeftBottom},
	{models.SlotCenterTop, models.SlotCenterBottom},
	{models.SlotRightTop, models.SlotRightMiddle, models.SlotRightBottom},
}

// boardGeometry computes the rectangle of every slot for the current sizing.
func boardGeometry(s layout.Sizing, width, height int) map[models.Slot]Rect {
	area := boardArea(width, height)
	colWidths := split(area.W, s.Cols)

	geom := make(map[models.Slot]Rect, len(models.Slots()))
	x := area.X
	for col := 0; col < 3; col++ {
		rowHeights := split(area.H, s.Group(columnGroup(col)))
		y := area.Y
		for row, slot := range slotsByColumn[col] {
			geom[slot] = Rect{X: x, Y: y, W: colWidths[col], H: rowHeights[row]}
			y += rowHeights[row]
		}
		x += colWidths[col]
	}
	return geom
}

// slotAt returns the slot under a terminal coordinate.
func slotAt(geom map[models.Slot]Rect, x, y int) (models.Slot, bool) {
	for _, slot := range models.Slots() {
		if geom[slot].Contains(x, y) {
			return slot, true
		}
	}
	return "", false
}

// splitterAt detects whether a coordinate sits on a divider between two
// panels and reports the resize pair it controls. Column dividers are
// vertical and one cell wide on either side; row dividers are horizontal.
func splitterAt(s layout.Sizing, width, height, x, y int) (layout.GroupID, int, bool, bool) {
	area := boardArea(width, height)
	if !area.Contains(x, y) {
		return "", 0, false, false
	}

	colWidths := split(area.W, s.Cols)
	boundary := area.X
	for i := 0; i < 2; i++ {
		boundary += colWidths[i]
		if x >= boundary-1 && x <= boundary {
			return layout.GroupCols, i, true, true
		}
	}

	// Row dividers inside the column under the cursor.
	colStart := area.X
	for col := 0; col < 3; col++ {
		if x >= colStart && x < colStart+colWidths[col] {
			group := columnGroup(col)
			rowHeights := split(area.H, s.Group(group))
			edge := area.Y
			for i := 0; i < len(rowHeights)-1; i++ {
				edge += rowHeights[i]
				if y == edge || y == edge-1 {
					return group, i, false, true
				}
			}
			break
		}
		colStart += colWidths[col]
	}
	return "", 0, false, false
}

// Calendar grid metrics, shared by the renderer and the tap hit test.
const (
	calCellWidth = 4
	calGridTop   = 2 // rows above the first week: month title and weekday row
)

// calendarDayAt maps a coordinate inside the calendar panel onto a
// zero-based day index, or -1 when the tap misses a day cell.
func calendarDayAt(rect Rect, year, monthIdx, x, y int) int {
	// One cell of border plus one of padding on each edge.
	originX, originY := rect.X+2, rect.Y+1
	gx, gy := x-originX, y-originY-calGridTop
	if gx < 0 || gy < 0 {
		return -1
	}
	col := gx / calCellWidth
	if col > 6 {
		return -1
	}
	firstDay := int(time.Date(year, time.Month(monthIdx+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
	idx := gy*7 + col - firstDay
	if idx < 0 || idx >= calendar.DaysIn(year, monthIdx) {
		return -1
	}
	return idx
}
