package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/namosistemos/namosite/app/models"
)

func TestDefaultSelection(t *testing.T) {
	_, options := testCatalog()

	sel := DefaultSelection(options)

	assert.Equal(t, 2, sel[10], "default quantity option starts at its DefaultQty")
	assert.Equal(t, 1, sel[20], "default switch option starts at 1")
	_, picked := sel[21]
	assert.False(t, picked, "non-default options start unselected")
}

func TestAdjustQuantityStopsAtBounds(t *testing.T) {
	_, options := testCatalog()
	room := options[0] // min 1, max 10, default 2

	sel := DefaultSelection(options)

	sel.AdjustQuantity(room, 1)
	assert.Equal(t, 3, sel[room.ID])

	// Walk past the upper bound; the quantity sticks at MaxQty.
	for i := 0; i < 20; i++ {
		sel.AdjustQuantity(room, 1)
	}
	assert.Equal(t, room.MaxQty, sel[room.ID])

	// And back down past the lower bound.
	for i := 0; i < 20; i++ {
		sel.AdjustQuantity(room, -1)
	}
	assert.Equal(t, room.MinQty, sel[room.ID])
}

func TestSelectSwitchIsExclusive(t *testing.T) {
	_, options := testCatalog()
	switchOptions := []models.Option{options[2], options[3]} // ids 20, 21

	sel := DefaultSelection(options) // starts with 20 selected
	sel.SelectSwitch(switchOptions, 21)

	_, aSelected := sel[20]
	assert.False(t, aSelected, "previously selected switch option must be dropped")
	assert.Equal(t, 1, sel[21], "newly selected switch option sits at quantity 1")

	// Selecting the same option again is idempotent.
	sel.SelectSwitch(switchOptions, 21)
	assert.Equal(t, 1, sel[21])
}

func TestSetAddonTogglesIndependently(t *testing.T) {
	sel := make(Selection)

	sel.SetAddon(30, true)
	sel.SetAddon(31, true)
	assert.Equal(t, 1, sel[30])
	assert.Equal(t, 1, sel[31])

	sel.SetAddon(30, false)
	_, present := sel[30]
	assert.False(t, present)
	assert.Equal(t, 1, sel[31], "other addons are untouched")
}

func TestItemsAreStable(t *testing.T) {
	sel := Selection{31: 1, 10: 3, 20: 1}

	items := sel.Items()

	assert.Len(t, items, 3)
	assert.Equal(t, []SelectedOption{{OptionID: 10, Quantity: 3}, {OptionID: 20, Quantity: 1}, {OptionID: 31, Quantity: 1}}, items)
}

// A selection driven through the UI helpers and priced by the engine lands on
// the same number the configurator preview shows.
func TestSelectionQuoteRoundTrip(t *testing.T) {
	groups, options := testCatalog()
	plan := models.Plan{ID: 2, Name: "Comfort", BasePriceCents: 625900}

	sel := make(Selection)
	// AdjustQuantity starts from DefaultQty (2) when the option was not
	// selected yet, so +2 lands on 4.
	sel.AdjustQuantity(options[0], 2)
	sel.SetAddon(30, true)
	assert.Equal(t, 4, sel[10])

	quote := ComputeQuote(plan, groups, options, sel.Items())
	assert.Equal(t, 625900+5000*4+15000, quote.TotalPriceCents)
}
