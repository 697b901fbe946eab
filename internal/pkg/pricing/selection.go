package pricing

import (
	"sort"

	"github.com/namosistemos/namosite/app/models"
)

// Selection is the working state of a plan configurator: option id mapped to
// the chosen quantity. The mutation helpers encode the same rules the landing
// page applies while the visitor clicks around, so a selection built here and
// priced with ComputeQuote matches the number the visitor saw.
type Selection map[uint]int

// DefaultSelection returns the state a freshly opened configurator starts
// with: every option flagged as default, at its default quantity.
func DefaultSelection(options []models.Option) Selection {
	sel := make(Selection)
	for _, o := range options {
		if o.IsDefault {
			qty := o.DefaultQty
			if qty < 1 {
				qty = 1
			}
			sel[o.ID] = qty
		}
	}
	return sel
}

// AdjustQuantity changes a quantity option by delta, clamped into the
// option's [MinQty, MaxQty] bounds. Stepping past a bound is a no-op on the
// out-of-range part, not an error.
func (s Selection) AdjustQuantity(option models.Option, delta int) {
	current, ok := s[option.ID]
	if !ok {
		current = option.DefaultQty
		if current < 1 {
			current = 1
		}
	}
	s[option.ID] = clampQuantity(option, current+delta)
}

// SelectSwitch picks one option of a switch group and deselects every other
// option of that group. The chosen option is always held at quantity 1.
func (s Selection) SelectSwitch(groupOptions []models.Option, optionID uint) {
	for _, o := range groupOptions {
		delete(s, o.ID)
	}
	s[optionID] = 1
}

// SetAddon toggles an addon option on or off, independent of anything else.
func (s Selection) SetAddon(optionID uint, on bool) {
	if on {
		s[optionID] = 1
	} else {
		delete(s, optionID)
	}
}

// Items flattens the selection into the wire form sent with a lead,
// ordered by option id for a stable payload.
func (s Selection) Items() []SelectedOption {
	items := make([]SelectedOption, 0, len(s))
	for id, qty := range s {
		items = append(items, SelectedOption{OptionID: id, Quantity: qty})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].OptionID < items[j].OptionID })
	return items
}
