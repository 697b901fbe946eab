package controllers

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/namosistemos/namosite/app/models"
	"github.com/namosistemos/namosite/app/repository"
)

func TestCreateLeadValidation(t *testing.T) {
	repository.SetGlobalRepositories(&repository.Repositories{})

	app := fiber.New()
	app.Post("/api/leads", HandleCreateLead)

	tests := []struct {
		name      string
		body      string
		wantField string
		wantTag   string
	}{
		{
			"missing city",
			`{"planId":1,"name":"Jonas","email":"jonas@example.lt"}`,
			"City", "required",
		},
		{
			"one-letter city",
			`{"planId":1,"name":"Jonas","email":"jonas@example.lt","city":"V"}`,
			"City", "min",
		},
		{
			"one-letter name",
			`{"planId":1,"name":"J","email":"jonas@example.lt","city":"Vilnius"}`,
			"Name", "min",
		},
		{
			"missing email",
			`{"planId":1,"name":"Jonas","city":"Vilnius"}`,
			"Email", "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/leads", tt.body))
			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			raw, _ := io.ReadAll(resp.Body)
			var parsed struct {
				Error  string            `json:"error"`
				Fields map[string]string `json:"fields"`
			}
			assert.NoError(t, json.Unmarshal(raw, &parsed))
			assert.Equal(t, "validation_failed", parsed.Error)
			assert.Equal(t, tt.wantTag, parsed.Fields[tt.wantField])
		})
	}
}

func TestCreateLeadAgainstDeletedPlanLeavesNoRow(t *testing.T) {
	createCalls := 0
	repository.SetGlobalRepositories(&repository.Repositories{
		Plan: &stubPlanRepo{
			getByID: func(id uint) (*models.Plan, error) { return nil, gorm.ErrRecordNotFound },
		},
		Lead: &stubLeadRepo{
			create: func(lead *models.Lead) error { createCalls++; return nil },
		},
	})

	app := fiber.New()
	app.Post("/api/leads", HandleCreateLead)

	body := `{"planId":99,"name":"Jonas","email":"jonas@example.lt","city":"Vilnius"}`
	resp, err := app.Test(jsonRequest(fiber.MethodPost, "/api/leads", body))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "bad_request", parsed.Error)
	assert.Equal(t, "Invalid plan", parsed.Message)
	assert.Equal(t, 0, createCalls, "no lead row may be written for a missing plan")
}
