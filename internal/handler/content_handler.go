package handler

import (
	"fmt"

	"fwsr-hub/internal/catalog"
	"fwsr-hub/internal/domain"
	"fwsr-hub/internal/dto"
	"fwsr-hub/internal/service"
	"fwsr-hub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler serves the static catalog: pillars, explainers, and posts.
type ContentHandler struct {
	explainerService service.ExplainerService
	validator        *validation.Validator
}

func NewContentHandler(explainerService service.ExplainerService) *ContentHandler {
	return &ContentHandler{
		explainerService: explainerService,
		validator:        validation.NewValidator(),
	}
}

// GetPillars lists all pillars in catalog order.
func (h *ContentHandler) GetPillars(c *fiber.Ctx) error {
	pillars := catalog.Pillars()
	out := make([]dto.PillarSummaryResponse, 0, len(pillars))
	for _, p := range pillars {
		out = append(out, dto.PillarSummaryResponse{
			ID:            p.ID,
			Title:         p.Title,
			Summary:       p.Summary,
			QuestionCount: len(p.Questions),
		})
	}
	return c.JSON(out)
}

// GetPillar returns one pillar's detail.
func (h *ContentHandler) GetPillar(c *fiber.Ctx) error {
	pillarID := c.Params("id")
	if errs := h.validator.ValidatePillarID(pillarID); len(errs) > 0 {
		return errs
	}

	pillar, ok := catalog.PillarByID(pillarID)
	if !ok {
		return domain.NewPillarNotFoundError(pillarID)
	}

	return c.JSON(dto.PillarResponse{
		ID:         pillar.ID,
		Title:      pillar.Title,
		Summary:    pillar.Summary,
		Details:    pillar.Details,
		Exemptions: pillar.Exemptions,
	})
}

// GetPillarExplainer returns the generated explainer for a pillar.
func (h *ContentHandler) GetPillarExplainer(c *fiber.Ctx) error {
	pillarID := c.Params("id")
	if errs := h.validator.ValidatePillarID(pillarID); len(errs) > 0 {
		return errs
	}

	text, err := h.explainerService.Explain(c.Context(), pillarID)
	if err != nil {
		return err
	}

	return c.JSON(dto.PillarExplainerResponse{
		PillarID: pillarID,
		Text:     text,
	})
}

// GetPosts lists the published articles without their bodies.
func (h *ContentHandler) GetPosts(c *fiber.Ctx) error {
	posts := catalog.Posts()
	out := make([]dto.BlogPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, dto.BlogPostResponse{
			ID:       p.ID,
			Title:    p.Title,
			Excerpt:  p.Excerpt,
			Date:     p.Date,
			Author:   p.Author,
			ReadTime: p.ReadTime,
			Category: p.Category,
		})
	}
	return c.JSON(out)
}

// GetPost returns one article with its body.
func (h *ContentHandler) GetPost(c *fiber.Ctx) error {
	postID := c.Params("id")
	post, ok := catalog.PostByID(postID)
	if !ok {
		return domain.NewNotFoundError(fmt.Sprintf("Post %s not found", postID))
	}

	return c.JSON(dto.BlogPostResponse{
		ID:       post.ID,
		Title:    post.Title,
		Excerpt:  post.Excerpt,
		Content:  post.Content,
		Date:     post.Date,
		Author:   post.Author,
		ReadTime: post.ReadTime,
		Category: post.Category,
	})
}
