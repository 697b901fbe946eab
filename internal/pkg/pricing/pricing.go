package pricing

import (
	"github.com/namosistemos/namosite/app/models"
)

// SelectedOption is a caller-supplied (option id, quantity) pair.
type SelectedOption struct {
	OptionID uint `json:"optionId" validate:"required"`
	Quantity int  `json:"quantity" validate:"min=1"`
}

// LineItem is one resolved row of a quote breakdown.
type LineItem struct {
	OptionID   uint   `json:"optionId"`
	Label      string `json:"label"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int    `json:"unitPrice"`
	TotalPrice int    `json:"totalPrice"`
}

// Quote is the computed total for a plan configuration.
type Quote struct {
	TotalPriceCents int        `json:"totalPriceCents"`
	LineItems       []LineItem `json:"lineItems"`
}

// ComputeQuote prices a plan configuration against a catalog snapshot.
// It is the single pricing implementation: the public quote preview and the
// authoritative recomputation on lead submission both run through here, so
// the two can never disagree on the same snapshot.
//
// Selected option ids that do not resolve against the snapshot are silently
// dropped; they contribute nothing to the total and produce no line item.
// Client-sent prices are never consulted.
func ComputeQuote(plan models.Plan, groups []models.OptionGroup, options []models.Option, selected []SelectedOption) Quote {
	kindByGroup := make(map[uint]string, len(groups))
	for _, g := range groups {
		kindByGroup[g.ID] = g.Kind
	}
	optionByID := make(map[uint]models.Option, len(options))
	for _, o := range options {
		optionByID[o.ID] = o
	}

	quote := Quote{
		TotalPriceCents: plan.BasePriceCents,
		LineItems:       []LineItem{},
	}

	for _, sel := range selected {
		option, ok := optionByID[sel.OptionID]
		if !ok {
			continue
		}
		qty := effectiveQuantity(kindByGroup[option.GroupID], option, sel.Quantity)
		lineTotal := option.UnitPriceCents * qty
		quote.TotalPriceCents += lineTotal
		quote.LineItems = append(quote.LineItems, LineItem{
			OptionID:   option.ID,
			Label:      option.Label,
			Quantity:   qty,
			UnitPrice:  option.UnitPriceCents,
			TotalPrice: lineTotal,
		})
	}

	return quote
}

// effectiveQuantity applies the group-kind rules to a requested quantity.
// Quantity options clamp into [MinQty, MaxQty]; switch and addon options
// always count once.
func effectiveQuantity(kind string, option models.Option, requested int) int {
	switch kind {
	case models.GroupKindSwitch, models.GroupKindAddon:
		return 1
	default:
		return clampQuantity(option, requested)
	}
}

func clampQuantity(option models.Option, qty int) int {
	min := option.MinQty
	if min < 1 {
		min = 1
	}
	max := option.MaxQty
	if max < min {
		max = min
	}
	if qty < min {
		return min
	}
	if qty > max {
		return max
	}
	return qty
}
