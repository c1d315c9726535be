package controller

import (
	"abhi-advisor-be/internal/dto"
	"abhi-advisor-be/internal/pkg/apperror"
	"abhi-advisor-be/internal/pkg/serverutils"
	"abhi-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	UpdateSession(ctx *fiber.Ctx) error
	GetSessionInteractions(ctx *fiber.Ctx) error
	RecommendPolicy(ctx *fiber.Ctx) error
}

type chatController struct {
	chat           service.IChatService
	recommendation service.IRecommendationService
	optionalJwt    fiber.Handler
}

// NewChatController takes a middleware that identifies the advisor when a
// bearer token is present but lets anonymous calls through.
func NewChatController(chat service.IChatService, recommendation service.IRecommendationService, optionalJwt fiber.Handler) IChatController {
	return &chatController{chat: chat, recommendation: recommendation, optionalJwt: optionalJwt}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	if c.optionalJwt != nil {
		h.Use(c.optionalJwt)
	}
	h.Post("/message", c.SendMessage)
	h.Post("/session", c.CreateSession)
	h.Put("/session/:id", c.UpdateSession)
	h.Get("/session/:id/interactions", c.GetSessionInteractions)
	h.Post("/recommend-policy", c.RecommendPolicy)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	if req.UserId == "" {
		req.UserId = serverutils.CurrentUserID(ctx)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chat.SendMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Message processed", res))
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}
	if req.UserId == "" {
		req.UserId = serverutils.CurrentUserID(ctx)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chat.CreateSession(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat session created", res))
}

func (c *chatController) UpdateSession(ctx *fiber.Ctx) error {
	var req dto.UpdateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}

	res, err := c.chat.UpdateSession(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat session updated", res))
}

func (c *chatController) GetSessionInteractions(ctx *fiber.Ctx) error {
	res, err := c.chat.GetSessionInteractions(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session interactions", res))
}

func (c *chatController) RecommendPolicy(ctx *fiber.Ctx) error {
	var req dto.RecommendPolicyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}

	res, err := c.recommendation.RecommendPolicies(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Policy recommendations", res))
}
