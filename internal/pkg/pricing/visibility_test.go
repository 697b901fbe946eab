package pricing

import (
	"testing"

	"github.com/namosistemos/namosite/app/models"
)

func TestVisibleGroupsEmptySetMeansAll(t *testing.T) {
	groups, _ := testCatalog()

	visible := VisibleGroups(1, nil, groups)
	if len(visible) != len(groups) {
		t.Fatalf("plan without links must see all %d groups, got %d", len(groups), len(visible))
	}

	// Links belonging to another plan do not narrow this one down.
	links := []models.PlanOptionGroup{{PlanID: 2, OptionGroupID: 1}}
	visible = VisibleGroups(1, links, groups)
	if len(visible) != len(groups) {
		t.Fatalf("foreign links must not apply, got %d groups", len(visible))
	}
}

func TestVisibleGroupsLinkedSubset(t *testing.T) {
	groups, _ := testCatalog()
	links := []models.PlanOptionGroup{
		{PlanID: 1, OptionGroupID: 2},
		{PlanID: 1, OptionGroupID: 3},
		{PlanID: 2, OptionGroupID: 1},
	}

	visible := VisibleGroups(1, links, groups)

	if len(visible) != 2 {
		t.Fatalf("expected exactly the 2 linked groups, got %d", len(visible))
	}
	if visible[0].ID != 2 || visible[1].ID != 3 {
		t.Fatalf("expected groups 2 and 3 in catalog order, got %+v", visible)
	}
}

func TestVisibleGroupsIgnoresDanglingLinks(t *testing.T) {
	groups, _ := testCatalog()
	links := []models.PlanOptionGroup{
		{PlanID: 1, OptionGroupID: 99}, // group deleted since
		{PlanID: 1, OptionGroupID: 3},
	}

	visible := VisibleGroups(1, links, groups)
	if len(visible) != 1 || visible[0].ID != 3 {
		t.Fatalf("dangling link must be skipped, got %+v", visible)
	}
}
