package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/namosistemos/namosite/app/models"
	"github.com/namosistemos/namosite/app/repository"
)

// Stub repositories for handler tests. Each embeds its interface so a test
// only wires up the methods it expects; an unexpected repository hit panics,
// which fails the test loudly.

type stubPlanRepo struct {
	repository.PlanRepository
	getByID            func(id uint) (*models.Plan, error)
	update             func(plan *models.Plan) error
	slugExistsExceptID func(slug string, id uint) (bool, error)
}

func (s *stubPlanRepo) GetByID(id uint) (*models.Plan, error) { return s.getByID(id) }
func (s *stubPlanRepo) Update(plan *models.Plan) error        { return s.update(plan) }
func (s *stubPlanRepo) SlugExistsExceptID(slug string, id uint) (bool, error) {
	return s.slugExistsExceptID(slug, id)
}

type stubOptionRepo struct {
	repository.OptionRepository
	getGroupByID       func(id uint) (*models.OptionGroup, error)
	getGroups          func() ([]models.OptionGroup, error)
	getOptions         func() ([]models.Option, error)
	getPlanLinksByPlan func(planID uint) ([]models.PlanOptionGroup, error)
	replacePlanLinks   func(planID uint, groupIDs []uint) error
}

func (s *stubOptionRepo) GetGroupByID(id uint) (*models.OptionGroup, error) {
	return s.getGroupByID(id)
}
func (s *stubOptionRepo) GetGroups() ([]models.OptionGroup, error) { return s.getGroups() }
func (s *stubOptionRepo) GetOptions() ([]models.Option, error)     { return s.getOptions() }
func (s *stubOptionRepo) GetPlanLinksByPlan(planID uint) ([]models.PlanOptionGroup, error) {
	return s.getPlanLinksByPlan(planID)
}
func (s *stubOptionRepo) ReplacePlanLinks(planID uint, groupIDs []uint) error {
	return s.replacePlanLinks(planID, groupIDs)
}

type stubContentRepo struct {
	repository.ContentRepository
	countContentBlocks  func() (int64, error)
	createContentBlock  func(block *models.ContentBlock) error
	getContentBlockByID func(id uint) (*models.ContentBlock, error)
	updateContentBlock  func(block *models.ContentBlock) error
}

func (s *stubContentRepo) CountContentBlocks() (int64, error) { return s.countContentBlocks() }
func (s *stubContentRepo) CreateContentBlock(block *models.ContentBlock) error {
	return s.createContentBlock(block)
}
func (s *stubContentRepo) GetContentBlockByID(id uint) (*models.ContentBlock, error) {
	return s.getContentBlockByID(id)
}
func (s *stubContentRepo) UpdateContentBlock(block *models.ContentBlock) error {
	return s.updateContentBlock(block)
}

type stubLeadRepo struct {
	repository.LeadRepository
	create func(lead *models.Lead) error
}

func (s *stubLeadRepo) Create(lead *models.Lead) error { return s.create(lead) }

// jsonRequest builds a request with a JSON body for app.Test.
func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}
