package controllers

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/namosistemos/namosite/app/models"
	"github.com/namosistemos/namosite/app/repository"
)

func TestCreateContentBlockRejectedAtCap(t *testing.T) {
	createCalls := 0
	repository.SetGlobalRepositories(&repository.Repositories{
		Content: &stubContentRepo{
			// Cap counting includes inactive rows: the stub count stands for
			// 10 stored blocks of any active state.
			countContentBlocks: func() (int64, error) { return models.MaxContentBlocks, nil },
			createContentBlock: func(block *models.ContentBlock) error { createCalls++; return nil },
		},
	})

	app := fiber.New()
	app.Post("/api/admin/content-blocks", HandleAdminCreateContentBlock)

	body := `{"slug":"about","title":"Apie mus","content":"...","isActive":false}`
	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/admin/content-blocks", body))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Error string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "limit_reached", parsed.Error)
	assert.Equal(t, 0, createCalls, "the eleventh block must never reach the repository")
}

func TestUpdateContentBlockPartialPayloadKeepsActiveFlag(t *testing.T) {
	stored := models.ContentBlock{
		ID:       3,
		Slug:     "about",
		Title:    "Apie mus",
		Content:  "Senas tekstas",
		IsActive: true,
	}
	var saved *models.ContentBlock
	repository.SetGlobalRepositories(&repository.Repositories{
		Content: &stubContentRepo{
			getContentBlockByID: func(id uint) (*models.ContentBlock, error) { cp := stored; return &cp, nil },
			updateContentBlock:  func(block *models.ContentBlock) error { saved = block; return nil },
		},
	})

	app := fiber.New()
	app.Patch("/api/admin/content-blocks/:id", HandleAdminUpdateContentBlock)

	resp, err := app.Test(jsonRequest(fiber.MethodPatch, "/api/admin/content-blocks/3", `{"content":"Naujas tekstas"}`))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	if assert.NotNil(t, saved) {
		assert.Equal(t, "Naujas tekstas", saved.Content)
		assert.True(t, saved.IsActive, "a payload without isActive must not deactivate the block")
		assert.Equal(t, "Apie mus", saved.Title)
		assert.Equal(t, "about", saved.Slug)
	}
}
