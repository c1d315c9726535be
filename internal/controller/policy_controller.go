package controller

import (
	"abhi-advisor-be/internal/pkg/serverutils"
	"abhi-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPolicyController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	GetByType(ctx *fiber.Ctx) error
	GetCompetitors(ctx *fiber.Ctx) error
}

type policyController struct {
	service service.IPolicyService
}

func NewPolicyController(service service.IPolicyService) IPolicyController {
	return &policyController{service: service}
}

func (c *policyController) RegisterRoutes(r fiber.Router) {
	r.Get("/policies", c.GetAll)
	r.Get("/policies/type/:type", c.GetByType)
	r.Get("/competitor-policies", c.GetCompetitors)
}

func (c *policyController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Policies", res))
}

func (c *policyController) GetByType(ctx *fiber.Ctx) error {
	res, err := c.service.GetByType(ctx.Context(), ctx.Params("type"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Policies", res))
}

func (c *policyController) GetCompetitors(ctx *fiber.Ctx) error {
	res, err := c.service.GetCompetitors(ctx.Context(), ctx.Query("provider"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Competitor policies", res))
}
