package controller

import (
	"abhi-advisor-be/internal/dto"
	"abhi-advisor-be/internal/pkg/apperror"
	"abhi-advisor-be/internal/pkg/serverutils"
	"abhi-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICustomerController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	GetInteractions(ctx *fiber.Ctx) error
}

type customerController struct {
	service service.ICustomerService
}

func NewCustomerController(service service.ICustomerService) ICustomerController {
	return &customerController{service: service}
}

func (c *customerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/customers")
	h.Get("/", c.GetAll)
	// registered before /:id so "search" is not captured as an id
	h.Get("/search", c.Search)
	h.Get("/:id", c.GetById)
	h.Get("/:id/interactions", c.GetInteractions)
	h.Post("/", c.Create)
}

func (c *customerController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Customers", res))
}

func (c *customerController) Search(ctx *fiber.Ctx) error {
	res, err := c.service.Search(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Search results", res))
}

func (c *customerController) GetById(ctx *fiber.Ctx) error {
	res, err := c.service.GetById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Customer", res))
}

func (c *customerController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.Response[*dto.CustomerResponse]{
		Success: true,
		Code:    fiber.StatusCreated,
		Message: "Customer created",
		Data:    res,
	})
}

func (c *customerController) GetInteractions(ctx *fiber.Ctx) error {
	res, err := c.service.GetInteractions(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Customer interactions", res))
}
