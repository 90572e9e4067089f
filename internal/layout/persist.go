package layout

import (
	"encoding/json"
	"math"

	"github.com/warit/safeboard/internal/config"
	"github.com/warit/safeboard/internal/models"
	"github.com/warit/safeboard/internal/store"
	"github.com/warit/safeboard/internal/util"
)

// loadSizing restores the sizing record, falling back to defaults when the
// record is missing or fails shape validation. A valid record is still
// renormalized on the way in so stored floating-point drift never survives a
// reload.
func loadSizing(st store.Store) Sizing {
	raw, ok := st.Get(config.KeyLayout)
	if !ok {
		return DefaultSizing()
	}
	var s Sizing
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return DefaultSizing()
	}
	if !validSizing(s) {
		return DefaultSizing()
	}
	for _, id := range Groups() {
		normalize(s.group(id), minFor(id))
	}
	return s
}

// validSizing checks the persisted record's arity and values. Group lengths
// are fixed by the grid; every member must be a finite positive number.
func validSizing(s Sizing) bool {
	lengths := map[GroupID]int{
		GroupCols:       3,
		GroupLeftRows:   2,
		GroupCenterRows: 2,
		GroupRightRows:  3,
	}
	for id, want := range lengths {
		g := s.group(id)
		if len(g) != want {
			return false
		}
		for _, v := range g {
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				return false
			}
		}
	}
	return true
}

// normalize scales g to sum to 100, then lifts any member below min at the
// proportional expense of the rest.
func normalize(g []float64, min float64) {
	sum := 0.0
	for _, v := range g {
		sum += v
	}
	if sum <= 0 {
		return
	}
	for i := range g {
		g[i] = g[i] / sum * 100
	}
	for i := range g {
		if g[i] < min {
			deficit := min - g[i]
			g[i] = min
			pool := 0.0
			for j := range g {
				if j != i && g[j] > min {
					pool += g[j] - min
				}
			}
			if pool <= 0 {
				continue
			}
			for j := range g {
				if j != i && g[j] > min {
					g[j] -= deficit * (g[j] - min) / pool
				}
			}
		}
	}
}

func (e *Engine) saveSizing() {
	data, err := json.Marshal(e.sizing)
	if err != nil {
		util.LogError("encode layout", err)
		return
	}
	util.LogError("save layout", e.store.Set(config.KeyLayout, string(data)))
}

// loadSlots restores the slot assignment. The record must cover every
// declared slot with a declared panel and use each panel exactly once;
// anything else falls back to the default assignment.
func loadSlots(st store.Store) map[models.Slot]models.Panel {
	raw, ok := st.Get(config.KeySlots)
	if !ok {
		return DefaultSlots()
	}
	var m map[models.Slot]models.Panel
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return DefaultSlots()
	}
	if !validSlots(m) {
		return DefaultSlots()
	}
	return m
}

func validSlots(m map[models.Slot]models.Panel) bool {
	if len(m) != len(models.Slots()) {
		return false
	}
	seen := make(map[models.Panel]bool, len(m))
	for _, slot := range models.Slots() {
		p, ok := m[slot]
		if !ok || !models.ValidPanel(p) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

func (e *Engine) saveSlots() {
	data, err := json.Marshal(e.slots)
	if err != nil {
		util.LogError("encode slots", err)
		return
	}
	util.LogError("save slots", e.store.Set(config.KeySlots, string(data)))
}
