package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestParseIDParam(t *testing.T) {
	app := fiber.New()
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		id, err := parseIDParam(c, "id")
		if err != nil {
			return badRequest(c, "Invalid id")
		}
		return c.JSON(fiber.Map{"id": id})
	})

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"numeric id", "/things/42", fiber.StatusOK},
		{"zero rejected", "/things/0", fiber.StatusBadRequest},
		{"negative rejected", "/things/-3", fiber.StatusBadRequest},
		{"non-numeric rejected", "/things/abc", fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestValidationErrorFieldMapping(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	app := fiber.New()
	app.Post("/check", func(c *fiber.Ctx) error {
		return validationError(c, validator.New().Struct(&payload{Email: "not-an-email"}))
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/check", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var parsed struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	assert.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, "validation_failed", parsed.Error)
	assert.Equal(t, "required", parsed.Fields["Name"])
	assert.Equal(t, "email", parsed.Fields["Email"])
}
