package pricing

import (
	"testing"

	"github.com/namosistemos/namosite/app/models"
)

func testCatalog() ([]models.OptionGroup, []models.Option) {
	groups := []models.OptionGroup{
		{ID: 1, Kind: models.GroupKindQuantity, Title: "Patalpos"},
		{ID: 2, Kind: models.GroupKindSwitch, Title: "Valdymo pultas"},
		{ID: 3, Kind: models.GroupKindAddon, Title: "Papildomos funkcijos"},
	}
	options := []models.Option{
		{ID: 10, GroupID: 1, Label: "Papildomas kambarys", UnitPriceCents: 5000, MinQty: 1, MaxQty: 10, DefaultQty: 2, IsDefault: true},
		{ID: 11, GroupID: 1, Label: "Papildomas aukštas", UnitPriceCents: 20000, MinQty: 1, MaxQty: 3},
		{ID: 20, GroupID: 2, Label: "Standartinis pultas", UnitPriceCents: 0, IsDefault: true, DefaultQty: 1},
		{ID: 21, GroupID: 2, Label: "Išmanusis pultas", UnitPriceCents: 30000},
		{ID: 30, GroupID: 3, Label: "Žaliuzių valdymas", UnitPriceCents: 15000},
		{ID: 31, GroupID: 3, Label: "Šildymo valdymas", UnitPriceCents: 25000},
	}
	return groups, options
}

func TestComputeQuoteBasePriceOnly(t *testing.T) {
	groups, options := testCatalog()
	plan := models.Plan{ID: 1, Name: "Start", BasePriceCents: 100000}

	quote := ComputeQuote(plan, groups, options, nil)
	if quote.TotalPriceCents != 100000 {
		t.Fatalf("expected base price 100000, got %d", quote.TotalPriceCents)
	}
	if len(quote.LineItems) != 0 {
		t.Fatalf("expected no line items, got %d", len(quote.LineItems))
	}
}

// The reference scenario: Comfort at 625900, a quantity option at 5000×3 and
// a 15000 addon must come out at 655900.
func TestComputeQuoteComfortScenario(t *testing.T) {
	groups, options := testCatalog()
	plan := models.Plan{ID: 2, Name: "Comfort", BasePriceCents: 625900}

	quote := ComputeQuote(plan, groups, options, []SelectedOption{
		{OptionID: 10, Quantity: 3},
		{OptionID: 30, Quantity: 1},
	})

	want := 625900 + 5000*3 + 15000
	if quote.TotalPriceCents != want {
		t.Fatalf("ComputeQuote = %d, want %d", quote.TotalPriceCents, want)
	}
	if len(quote.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(quote.LineItems))
	}
	if quote.LineItems[0].TotalPrice != 15000 || quote.LineItems[1].TotalPrice != 15000 {
		t.Fatalf("unexpected line totals: %+v", quote.LineItems)
	}
}

func TestComputeQuoteIgnoresUnknownOptions(t *testing.T) {
	groups, options := testCatalog()
	plan := models.Plan{ID: 1, BasePriceCents: 50000}

	quote := ComputeQuote(plan, groups, options, []SelectedOption{
		{OptionID: 9999, Quantity: 5},
		{OptionID: 30, Quantity: 1},
	})

	if quote.TotalPriceCents != 50000+15000 {
		t.Fatalf("unknown option must contribute 0, got total %d", quote.TotalPriceCents)
	}
	if len(quote.LineItems) != 1 {
		t.Fatalf("unknown option must not produce a line item, got %d", len(quote.LineItems))
	}
}

func TestComputeQuoteClampsQuantities(t *testing.T) {
	groups, options := testCatalog()
	plan := models.Plan{ID: 1, BasePriceCents: 0}

	tests := []struct {
		name      string
		requested int
		wantQty   int
	}{
		{name: "below min clamps up", requested: 0, wantQty: 1},
		{name: "negative clamps up", requested: -7, wantQty: 1},
		{name: "above max clamps down", requested: 50, wantQty: 10},
		{name: "in range untouched", requested: 4, wantQty: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := ComputeQuote(plan, groups, options, []SelectedOption{{OptionID: 10, Quantity: tt.requested}})
			if len(quote.LineItems) != 1 {
				t.Fatalf("expected one line item, got %d", len(quote.LineItems))
			}
			if got := quote.LineItems[0].Quantity; got != tt.wantQty {
				t.Fatalf("quantity = %d, want %d", got, tt.wantQty)
			}
			if quote.TotalPriceCents != 5000*tt.wantQty {
				t.Fatalf("total = %d, want %d", quote.TotalPriceCents, 5000*tt.wantQty)
			}
		})
	}
}

// Switch and addon options count once no matter what quantity the client sends.
func TestComputeQuoteForcesSingleQuantityForSwitchAndAddon(t *testing.T) {
	groups, options := testCatalog()
	plan := models.Plan{ID: 1, BasePriceCents: 0}

	quote := ComputeQuote(plan, groups, options, []SelectedOption{
		{OptionID: 21, Quantity: 7},
		{OptionID: 30, Quantity: 4},
	})

	if quote.TotalPriceCents != 30000+15000 {
		t.Fatalf("total = %d, want %d", quote.TotalPriceCents, 30000+15000)
	}
	for _, item := range quote.LineItems {
		if item.Quantity != 1 {
			t.Fatalf("option %d priced with quantity %d, want 1", item.OptionID, item.Quantity)
		}
	}
}

// A tampered payload cannot change the price: the engine only reads option id
// and quantity, every price comes from the catalog snapshot.
func TestComputeQuoteIsDeterministicAcrossCallers(t *testing.T) {
	groups, options := testCatalog()
	plan := models.Plan{ID: 2, Name: "Comfort", BasePriceCents: 625900}
	selected := []SelectedOption{
		{OptionID: 10, Quantity: 3},
		{OptionID: 21, Quantity: 1},
		{OptionID: 31, Quantity: 1},
	}

	preview := ComputeQuote(plan, groups, options, selected)
	authoritative := ComputeQuote(plan, groups, options, selected)

	if preview.TotalPriceCents != authoritative.TotalPriceCents {
		t.Fatalf("preview %d != authoritative %d", preview.TotalPriceCents, authoritative.TotalPriceCents)
	}
	if len(preview.LineItems) != len(authoritative.LineItems) {
		t.Fatalf("line item count differs")
	}
	for i := range preview.LineItems {
		if preview.LineItems[i] != authoritative.LineItems[i] {
			t.Fatalf("line item %d differs: %+v vs %+v", i, preview.LineItems[i], authoritative.LineItems[i])
		}
	}
}

func TestClampQuantityDegenerateBounds(t *testing.T) {
	// MaxQty below MinQty collapses to MinQty instead of producing an
	// impossible range.
	opt := models.Option{MinQty: 5, MaxQty: 2}
	if got := clampQuantity(opt, 3); got != 5 {
		t.Fatalf("clampQuantity = %d, want 5", got)
	}
	// Zero-value bounds behave as [1, 1].
	opt = models.Option{}
	if got := clampQuantity(opt, 9); got != 1 {
		t.Fatalf("clampQuantity with zero bounds = %d, want 1", got)
	}
}
