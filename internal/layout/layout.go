// Package layout owns the proportional sizing of the board's fixed grid and
// the assignment of panel identities to grid slots. The grid is three
// columns; the left and center columns split into two rows, the right column
// into three. Each proportion group is an ordered set of percentages that
// always sums to 100 after any mutation.
package layout

import (
	"math"

	"github.com/warit/safeboard/internal/config"
	"github.com/warit/safeboard/internal/models"
	"github.com/warit/safeboard/internal/store"
	"github.com/warit/safeboard/internal/util"
)

// GroupID names one proportion group.
type GroupID string

const (
	GroupCols       GroupID = "cols"
	GroupLeftRows   GroupID = "leftRows"
	GroupCenterRows GroupID = "centerRows"
	GroupRightRows  GroupID = "rightRows"
)

// Groups lists every proportion group.
func Groups() []GroupID {
	return []GroupID{GroupCols, GroupLeftRows, GroupCenterRows, GroupRightRows}
}

// Sizing holds the four proportion groups. Field order matches the persisted
// record shape.
type Sizing struct {
	Cols       []float64 `json:"cols"`
	LeftRows   []float64 `json:"leftRows"`
	CenterRows []float64 `json:"centerRows"`
	RightRows  []float64 `json:"rightRows"`
}

// DefaultSizing returns a fresh copy of the hard-coded default proportions.
func DefaultSizing() Sizing {
	return Sizing{
		Cols:       append([]float64(nil), config.DefaultCols...),
		LeftRows:   append([]float64(nil), config.DefaultLeftRows...),
		CenterRows: append([]float64(nil), config.DefaultCenterRows...),
		RightRows:  append([]float64(nil), config.DefaultRightRows...),
	}
}

// group returns the mutable slice backing id.
func (s *Sizing) group(id GroupID) []float64 {
	switch id {
	case GroupCols:
		return s.Cols
	case GroupLeftRows:
		return s.LeftRows
	case GroupCenterRows:
		return s.CenterRows
	case GroupRightRows:
		return s.RightRows
	}
	return nil
}

// Group returns a copy of the named group's values.
func (s Sizing) Group(id GroupID) []float64 {
	return append([]float64(nil), s.group(id)...)
}

// minFor is the smallest percentage any member of a group may hold.
func minFor(id GroupID) float64 {
	if id == GroupCols {
		return config.MinColumnPct
	}
	return config.MinRowPct
}

// DefaultSlots returns the default slot-to-panel assignment.
func DefaultSlots() map[models.Slot]models.Panel {
	return map[models.Slot]models.Panel{
		models.SlotLeftTop:      models.PanelSlogan,
		models.SlotLeftBottom:   models.PanelSafetyData,
		models.SlotCenterTop:    models.PanelCalendar,
		models.SlotCenterBottom: models.PanelAnnouncements,
		models.SlotRightTop:     models.PanelStreak,
		models.SlotRightMiddle:  models.PanelPolicy,
		models.SlotRightBottom:  models.PanelPoster,
	}
}

// Engine is the layout engine. All mutation goes through its methods; the
// view layer re-reads Sizing and Slots after every call.
type Engine struct {
	sizing Sizing
	slots  map[models.Slot]models.Panel
	store  store.Store
	drag   *dragState
}

// dragState snapshots a proportion group at gesture start so repeated
// pointer deltas apply against stable values instead of accumulating
// rounding drift.
type dragState struct {
	group GroupID
	pair  int
	start []float64
}

// New builds an engine from persisted records, falling back to defaults for
// any record that is missing or fails shape validation.
func New(st store.Store) *Engine {
	e := &Engine{store: st}
	e.sizing = loadSizing(st)
	e.slots = loadSlots(st)
	return e
}

// Sizing returns a copy of the current proportions.
func (e *Engine) Sizing() Sizing {
	return Sizing{
		Cols:       append([]float64(nil), e.sizing.Cols...),
		LeftRows:   append([]float64(nil), e.sizing.LeftRows...),
		CenterRows: append([]float64(nil), e.sizing.CenterRows...),
		RightRows:  append([]float64(nil), e.sizing.RightRows...),
	}
}

// Slots returns a copy of the current slot-to-panel assignment.
func (e *Engine) Slots() map[models.Slot]models.Panel {
	out := make(map[models.Slot]models.Panel, len(e.slots))
	for s, p := range e.slots {
		out[s] = p
	}
	return out
}

// PanelAt returns the panel occupying slot.
func (e *Engine) PanelAt(slot models.Slot) models.Panel {
	return e.slots[slot]
}

// SlotOf returns the slot holding panel. The assignment is a bijection, so
// every valid panel has exactly one slot.
func (e *Engine) SlotOf(panel models.Panel) (models.Slot, bool) {
	for s, p := range e.slots {
		if p == panel {
			return s, true
		}
	}
	return "", false
}

// BeginResize starts a resize gesture on the adjacent pair (pairIndex,
// pairIndex+1) of the given group, snapshotting the group's current values.
// It reports whether the pair is valid. A gesture already in progress is
// replaced; one pointer drives one gesture at a time.
func (e *Engine) BeginResize(group GroupID, pairIndex int) bool {
	g := e.sizing.group(group)
	if g == nil || pairIndex < 0 || pairIndex+1 >= len(g) {
		return false
	}
	e.drag = &dragState{
		group: group,
		pair:  pairIndex,
		start: append([]float64(nil), g...),
	}
	return true
}

// Resize applies the total delta (percent of the container axis) accumulated
// since BeginResize. Deltas are absolute against the gesture snapshot, not
// incremental, so out-of-order or repeated pointer events cannot drift the
// untouched members. Resize never fails; it saturates at the group minimum.
func (e *Engine) Resize(deltaPct float64) {
	if e.drag == nil {
		return
	}
	next := applyPairDelta(e.drag.start, e.drag.pair, deltaPct, minFor(e.drag.group))
	copy(e.sizing.group(e.drag.group), next)
}

// EndResize finalizes the gesture and persists the sizing. Persisting only
// at gesture end coalesces the rapid writes a drag would otherwise cause;
// the final stored value always matches memory.
func (e *Engine) EndResize() {
	if e.drag == nil {
		return
	}
	e.drag = nil
	e.saveSizing()
}

// Resizing reports whether a resize gesture is active.
func (e *Engine) Resizing() bool {
	return e.drag != nil
}

// ResizeAdjacentPair performs a complete one-shot resize, for callers
// without a gesture lifecycle (keyboard nudges, tests).
func (e *Engine) ResizeAdjacentPair(group GroupID, pairIndex int, deltaPct float64) {
	if !e.BeginResize(group, pairIndex) {
		return
	}
	e.Resize(deltaPct)
	e.EndResize()
}

// applyPairDelta grows values[pair] by deltaPct at the expense of
// values[pair+1], clamps both to min, and renormalizes the whole group so it
// sums to exactly 100. Members outside the pair keep their ratio.
func applyPairDelta(values []float64, pair int, deltaPct, min float64) []float64 {
	out := append([]float64(nil), values...)

	rest := 0.0
	for i, v := range out {
		if i != pair && i != pair+1 {
			rest += v
		}
	}

	a := out[pair] + deltaPct
	hi := 100 - rest - min
	if a < min {
		a = min
	}
	if a > hi {
		a = hi
	}
	b := 100 - rest - a
	if b < min {
		b = min
		a = 100 - rest - b
	}
	out[pair], out[pair+1] = a, b

	sum := 0.0
	for _, v := range out {
		sum += v
	}
	if sum > 0 && math.Abs(sum-100) > 1e-9 {
		for i := range out {
			out[i] = out[i] / sum * 100
		}
	}
	return out
}

// SwapSlots exchanges the panels held by two slots. Swapping a slot with
// itself, or naming an undeclared slot, changes nothing. Because the only
// mutation is an exchange, the assignment stays a bijection over the panel
// set for any sequence of swaps.
func (e *Engine) SwapSlots(a, b models.Slot) {
	if a == b || !models.ValidSlot(a) || !models.ValidSlot(b) {
		return
	}
	e.slots[a], e.slots[b] = e.slots[b], e.slots[a]
	e.saveSlots()
}

// Reset restores sizing and slot assignment to defaults and clears the
// persisted records.
func (e *Engine) Reset() {
	e.sizing = DefaultSizing()
	e.slots = DefaultSlots()
	e.drag = nil
	util.LogError("clear layout record", e.store.Delete(config.KeyLayout))
	util.LogError("clear slots record", e.store.Delete(config.KeySlots))
}
