package controller

import (
	"happycust-be/internal/dto"
	"happycust-be/internal/pkg/serverutils"
	"happycust-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// widgetController serves the embeddable widget. No session: every request is
// authorized by resolving the project api key carried in the body or query.
type IWidgetController interface {
	RegisterRoutes(r fiber.Router)
	GetProject(ctx *fiber.Ctx) error
	CreateFeedback(ctx *fiber.Ctx) error
	CreateReview(ctx *fiber.Ctx) error
	CreateIssue(ctx *fiber.Ctx) error
	ListFeatures(ctx *fiber.Ctx) error
	CreateFeature(ctx *fiber.Ctx) error
	ToggleVote(ctx *fiber.Ctx) error
}

type widgetController struct {
	service service.IWidgetService
}

func NewWidgetController(service service.IWidgetService) IWidgetController {
	return &widgetController{service: service}
}

func (c *widgetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/widget")
	h.Get("/project", c.GetProject)
	h.Post("/feedback", c.CreateFeedback)
	h.Post("/reviews", c.CreateReview)
	h.Post("/issues", c.CreateIssue)
	h.Get("/features", c.ListFeatures)
	h.Post("/features", c.CreateFeature)
	h.Post("/features/vote", c.ToggleVote)
}

func (c *widgetController) GetProject(ctx *fiber.Ctx) error {
	apiKey := ctx.Query("apiKey")
	if apiKey == "" {
		return serverutils.NewNotFoundError("Project not found")
	}

	res, err := c.service.ResolveProject(ctx.Context(), apiKey)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("", res))
}

func (c *widgetController) CreateFeedback(ctx *fiber.Ctx) error {
	var req dto.CreateFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid input data")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateFeedback(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Feedback received", res))
}

func (c *widgetController) CreateReview(ctx *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid input data")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateReview(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Review received", res))
}

func (c *widgetController) CreateIssue(ctx *fiber.Ctx) error {
	var req dto.CreateIssueRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid input data")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateIssue(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Issue received", res))
}

func (c *widgetController) ListFeatures(ctx *fiber.Ctx) error {
	res, err := c.service.ListFeatures(
		ctx.Context(),
		ctx.Query("projectId"),
		ctx.Query("search"),
		ctx.Query("fingerprint"),
	)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("", res))
}

func (c *widgetController) CreateFeature(ctx *fiber.Ctx) error {
	var req dto.CreateFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid input data")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateFeature(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Feature request received", res))
}

func (c *widgetController) ToggleVote(ctx *fiber.Ctx) error {
	var req dto.VoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Invalid input data")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ToggleVote(ctx.Context(), &req)
	if err != nil {
		return err
	}

	// Vote responses carry the action at the top level, not under data.
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"action":  res.Action,
	})
}
