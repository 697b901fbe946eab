package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanValidate(t *testing.T) {
	plan := Plan{Slug: "premium", Name: "Premium", BasePriceCents: 625900}
	assert.NoError(t, plan.Validate())

	missingSlug := Plan{Name: "Premium"}
	assert.Error(t, missingSlug.Validate())

	negativePrice := Plan{Slug: "premium", Name: "Premium", BasePriceCents: -1}
	assert.Error(t, negativePrice.Validate())
}

func TestOptionGroupKindRestricted(t *testing.T) {
	for _, kind := range []string{GroupKindQuantity, GroupKindSwitch, GroupKindAddon} {
		group := OptionGroup{Kind: kind, Title: "Rooms"}
		assert.NoError(t, group.Validate(), kind)
	}

	bogus := OptionGroup{Kind: "slider", Title: "Rooms"}
	assert.Error(t, bogus.Validate())
}

func TestFeatureValueTypeRestricted(t *testing.T) {
	boolean := Feature{GroupID: 1, Label: "App control", ValueType: FeatureValueBoolean}
	assert.NoError(t, boolean.Validate())

	text := Feature{GroupID: 1, Label: "Support hours", ValueType: FeatureValueText}
	assert.NoError(t, text.Validate())

	bogus := Feature{GroupID: 1, Label: "Support hours", ValueType: "number"}
	assert.Error(t, bogus.Validate())
}

func TestMenuLinkTargetTypeRestricted(t *testing.T) {
	section := MenuLink{Label: "Plans", TargetType: LinkTargetSection, TargetValue: "plans"}
	assert.NoError(t, section.Validate())

	external := MenuLink{Label: "Blog", TargetType: LinkTargetExternal, TargetValue: "https://example.com"}
	assert.NoError(t, external.Validate())

	bogus := MenuLink{Label: "Plans", TargetType: "anchor", TargetValue: "plans"}
	assert.Error(t, bogus.Validate())
}
