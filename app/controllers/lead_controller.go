package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"github.com/namosistemos/namosite/app/models"
	"github.com/namosistemos/namosite/app/repository"
	"github.com/namosistemos/namosite/internal/pkg/mail"
	"github.com/namosistemos/namosite/internal/pkg/pricing"
)

// LeadRequest is the submission payload. Quantities are requests, not
// prices: the server reprices everything against the current catalog and
// ignores any totals the client may have displayed.
type LeadRequest struct {
	PlanID          uint                     `json:"planId" validate:"required"`
	Name            string                   `json:"name" validate:"required,min=2,max=100"`
	Email           string                   `json:"email" validate:"required,email,max=150"`
	Phone           string                   `json:"phone" validate:"max=30"`
	City            string                   `json:"city" validate:"required,min=2,max=100"`
	Comment         string                   `json:"comment" validate:"max=2000"`
	SelectedOptions []pricing.SelectedOption `json:"selectedOptions" validate:"dive"`
}

// HandleCreateLead validates a configuration request, reprices it server-side
// and stores the lead with a denormalized option snapshot. Email notifications
// go out in the background; the response never waits for SMTP.
func HandleCreateLead(c *fiber.Ctx) error {
	var req LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validator.New().Struct(&req); err != nil {
		return validationError(c, err)
	}

	repos := repository.GetGlobalFactory().GetRepositories()

	plan, err := repos.Plan.GetByID(req.PlanID)
	if err != nil {
		if isNotFound(err) {
			return badRequest(c, "Invalid plan")
		}
		return internalError(c, "Failed to load plan")
	}

	groups, err := repos.Option.GetGroups()
	if err != nil {
		return internalError(c, "Failed to load option groups")
	}
	options, err := repos.Option.GetOptions()
	if err != nil {
		return internalError(c, "Failed to load options")
	}

	quote := pricing.ComputeQuote(*plan, groups, options, req.SelectedOptions)

	snapshot := make([]models.SelectedOption, 0, len(quote.LineItems))
	for _, item := range quote.LineItems {
		snapshot = append(snapshot, models.SelectedOption{
			OptionID:   item.OptionID,
			Label:      item.Label,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	lead := models.Lead{
		PlanID:          plan.ID,
		PlanName:        plan.Name,
		TotalPriceCents: quote.TotalPriceCents,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		City:            req.City,
		Comment:         req.Comment,
		SelectedOptions: datatypes.NewJSONSlice(snapshot),
	}

	if err := repos.Lead.Create(&lead); err != nil {
		return internalError(c, "Failed to store lead")
	}

	go mail.SendLeadNotifications(lead)

	return c.Status(fiber.StatusCreated).JSON(lead)
}

// HandleAdminGetLeads returns all captured leads, newest first.
func HandleAdminGetLeads(c *fiber.Ctx) error {
	leads, err := repository.GetGlobalFactory().GetLeadRepository().GetAll()
	if err != nil {
		return internalError(c, "Failed to load leads")
	}
	return c.JSON(leads)
}

// HandleAdminGetLead returns one captured lead.
func HandleAdminGetLead(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid lead id")
	}

	lead, err := repository.GetGlobalFactory().GetLeadRepository().GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return notFound(c, "Lead not found")
		}
		return internalError(c, "Failed to load lead")
	}
	return c.JSON(lead)
}
