package controllers

import (
	"io"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/namosistemos/namosite/app/models"
	"github.com/namosistemos/namosite/app/repository"
)

func TestUpdatePlanPartialPayloadKeepsUnsentFields(t *testing.T) {
	stored := models.Plan{
		ID:             1,
		Slug:           "comfort",
		Name:           "Comfort",
		Tagline:        "Most popular",
		BasePriceCents: 625900,
		IsHighlighted:  true,
		SortOrder:      2,
	}
	var saved *models.Plan
	repository.SetGlobalRepositories(&repository.Repositories{
		Plan: &stubPlanRepo{
			getByID:            func(id uint) (*models.Plan, error) { cp := stored; return &cp, nil },
			slugExistsExceptID: func(slug string, id uint) (bool, error) { return false, nil },
			update:             func(plan *models.Plan) error { saved = plan; return nil },
		},
	})

	app := fiber.New()
	app.Patch("/api/admin/plans/:id", HandleAdminUpdatePlan)

	resp, err := app.Test(jsonRequest(fiber.MethodPatch, "/api/admin/plans/1", `{"name":"Comfort Plus"}`))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	if assert.NotNil(t, saved) {
		assert.Equal(t, "Comfort Plus", saved.Name)
		// Everything the payload did not mention keeps its stored value.
		assert.Equal(t, "comfort", saved.Slug)
		assert.Equal(t, "Most popular", saved.Tagline)
		assert.Equal(t, 625900, saved.BasePriceCents)
		assert.True(t, saved.IsHighlighted)
		assert.Equal(t, 2, saved.SortOrder)
	}
}

func TestUpdatePlanExplicitZeroStillApplies(t *testing.T) {
	stored := models.Plan{ID: 1, Slug: "comfort", Name: "Comfort", IsHighlighted: true}
	var saved *models.Plan
	repository.SetGlobalRepositories(&repository.Repositories{
		Plan: &stubPlanRepo{
			getByID:            func(id uint) (*models.Plan, error) { cp := stored; return &cp, nil },
			slugExistsExceptID: func(slug string, id uint) (bool, error) { return false, nil },
			update:             func(plan *models.Plan) error { saved = plan; return nil },
		},
	})

	app := fiber.New()
	app.Patch("/api/admin/plans/:id", HandleAdminUpdatePlan)

	resp, err := app.Test(jsonRequest(fiber.MethodPatch, "/api/admin/plans/1", `{"isHighlighted":false}`))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	if assert.NotNil(t, saved) {
		assert.False(t, saved.IsHighlighted, "an explicit false must not be treated as absent")
		assert.Equal(t, "Comfort", saved.Name)
	}
}

func TestReplacePlanOptionGroupsIsIdempotent(t *testing.T) {
	var links []models.PlanOptionGroup
	replaceCalls := 0

	repository.SetGlobalRepositories(&repository.Repositories{
		Plan: &stubPlanRepo{
			getByID: func(id uint) (*models.Plan, error) {
				return &models.Plan{ID: id, Slug: "comfort", Name: "Comfort"}, nil
			},
		},
		Option: &stubOptionRepo{
			getGroupByID: func(id uint) (*models.OptionGroup, error) {
				if id == 1 || id == 2 {
					return &models.OptionGroup{ID: id, Kind: models.GroupKindAddon, Title: "Group"}, nil
				}
				return nil, gorm.ErrRecordNotFound
			},
			replacePlanLinks: func(planID uint, groupIDs []uint) error {
				replaceCalls++
				// Delete-then-insert: the previous set is gone entirely.
				links = links[:0]
				for i, gid := range groupIDs {
					links = append(links, models.PlanOptionGroup{
						ID:            uint(i + 1),
						PlanID:        planID,
						OptionGroupID: gid,
					})
				}
				return nil
			},
			getPlanLinksByPlan: func(planID uint) ([]models.PlanOptionGroup, error) {
				return append([]models.PlanOptionGroup(nil), links...), nil
			},
		},
	})

	app := fiber.New()
	app.Put("/api/admin/plan-option-groups/:planId", HandleAdminReplacePlanOptionGroups)

	body := `{"optionGroupIds":[1,2]}`

	first, err := app.Test(jsonRequest(fiber.MethodPut, "/api/admin/plan-option-groups/5", body))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, first.StatusCode)
	firstBody, _ := io.ReadAll(first.Body)

	second, err := app.Test(jsonRequest(fiber.MethodPut, "/api/admin/plan-option-groups/5", body))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, second.StatusCode)
	secondBody, _ := io.ReadAll(second.Body)

	assert.Equal(t, 2, replaceCalls)
	assert.JSONEq(t, string(firstBody), string(secondBody), "repeating the same replace must not change the result")
	assert.Len(t, links, 2, "the set is replaced, never accumulated")
}

func TestReplacePlanOptionGroupsRejectsUnknownGroup(t *testing.T) {
	replaceCalls := 0
	repository.SetGlobalRepositories(&repository.Repositories{
		Plan: &stubPlanRepo{
			getByID: func(id uint) (*models.Plan, error) {
				return &models.Plan{ID: id, Slug: "comfort", Name: "Comfort"}, nil
			},
		},
		Option: &stubOptionRepo{
			getGroupByID: func(id uint) (*models.OptionGroup, error) {
				return nil, gorm.ErrRecordNotFound
			},
			replacePlanLinks: func(planID uint, groupIDs []uint) error {
				replaceCalls++
				return nil
			},
		},
	})

	app := fiber.New()
	app.Put("/api/admin/plan-option-groups/:planId", HandleAdminReplacePlanOptionGroups)

	resp, err := app.Test(jsonRequest(fiber.MethodPut, "/api/admin/plan-option-groups/5", `{"optionGroupIds":[77]}`))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, replaceCalls)
}
