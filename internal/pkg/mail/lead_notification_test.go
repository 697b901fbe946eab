package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/namosistemos/namosite/app/models"
)

func sampleLead() models.Lead {
	return models.Lead{
		ID:              7,
		Reference:       "3f1a9c2e-0000-0000-0000-000000000000",
		PlanName:        "Comfort",
		TotalPriceCents: 655900,
		Name:            "Jonas",
		Email:           "jonas@example.lt",
		Phone:           "+37060000000",
		City:            "Vilnius",
		Comment:         "Skambinti po 17h <script>",
		SelectedOptions: []models.SelectedOption{
			{OptionID: 10, Label: "Papildomas kambarys", Quantity: 3, UnitPrice: 5000, TotalPrice: 15000},
			{OptionID: 30, Label: "Žaliuzių valdymas", Quantity: 1, UnitPrice: 15000, TotalPrice: 15000},
		},
	}
}

func TestLeadAdminBody(t *testing.T) {
	body := LeadAdminBody(sampleLead())

	assert.Contains(t, body, "Nauja užklausa #7")
	assert.Contains(t, body, "Comfort")
	assert.Contains(t, body, "Papildomas kambarys")
	assert.Contains(t, body, "6559 €")
	assert.Contains(t, body, "3f1a9c2e")
	// User input is escaped, not rendered.
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestLeadAdminBodyWithoutOptionalFields(t *testing.T) {
	lead := sampleLead()
	lead.Phone = ""
	lead.Comment = ""
	lead.SelectedOptions = nil

	body := LeadAdminBody(lead)

	assert.NotContains(t, body, "Telefonas")
	assert.NotContains(t, body, "Komentaras")
	assert.False(t, strings.Contains(body, "<table"), "no breakdown table without options")
}

func TestLeadCustomerBody(t *testing.T) {
	body := LeadCustomerBody(sampleLead())

	assert.Contains(t, body, "Jonas")
	assert.Contains(t, body, "Comfort")
	assert.Contains(t, body, "6559 €")
}

func TestFormatEuroCents(t *testing.T) {
	assert.Equal(t, "6559 €", FormatEuroCents(655900))
	assert.Equal(t, "0 €", FormatEuroCents(0))
	assert.Equal(t, "6559,50 €", FormatEuroCents(655950))
	assert.Equal(t, "6559,05 €", FormatEuroCents(655905))
	assert.Equal(t, "0,99 €", FormatEuroCents(99))
}
