package pricing

import (
	"github.com/namosistemos/namosite/app/models"
)

// VisibleGroups resolves which option groups a plan displays.
//
// A plan with zero PlanOptionGroup rows shows EVERY group. This
// empty-set-means-all rule is intentional default-permissive behavior that
// existing admin-authored catalogs rely on: a freshly created plan exposes
// the whole catalog until the admin narrows it down. Do not "fix" this to
// empty-means-none.
func VisibleGroups(planID uint, links []models.PlanOptionGroup, groups []models.OptionGroup) []models.OptionGroup {
	linked := make(map[uint]bool)
	for _, l := range links {
		if l.PlanID == planID {
			linked[l.OptionGroupID] = true
		}
	}
	if len(linked) == 0 {
		return groups
	}

	visible := make([]models.OptionGroup, 0, len(linked))
	for _, g := range groups {
		if linked[g.ID] {
			visible = append(visible, g)
		}
	}
	return visible
}
