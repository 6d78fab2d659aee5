package controller

import (
	"strconv"

	"happycust-be/internal/pkg/serverutils"
	"happycust-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// publicController serves the reviews embed. Unlike the rest of the API it is
// CORS-open: the embed runs on arbitrary customer domains.
type IPublicController interface {
	RegisterRoutes(r fiber.Router)
	GetReviews(ctx *fiber.Ctx) error
}

type publicController struct {
	service service.IWidgetService
}

func NewPublicController(service service.IWidgetService) IPublicController {
	return &publicController{service: service}
}

func (c *publicController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/public", corsOpen)
	h.Options("/reviews", preflight)
	h.Get("/reviews", c.GetReviews)
}

func corsOpen(ctx *fiber.Ctx) error {
	ctx.Set("Access-Control-Allow-Origin", "*")
	ctx.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	ctx.Set("Access-Control-Allow-Headers", "Content-Type")
	return ctx.Next()
}

func preflight(ctx *fiber.Ctx) error {
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *publicController) GetReviews(ctx *fiber.Ctx) error {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	res, err := c.service.PublicReviews(ctx.Context(), ctx.Query("projectId"), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("", res))
}
