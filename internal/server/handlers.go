package server

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-logic/speclogic-api/internal/catalog"
	"github.com/spec-logic/speclogic-api/internal/export"
	"github.com/spec-logic/speclogic-api/internal/models"
	"github.com/spec-logic/speclogic-api/internal/store"
	"github.com/spec-logic/speclogic-api/pkg/compat"
)

type handlers struct {
	catalog *catalog.Catalog
	builds  store.BuildStore
}

// buildRequest carries a partial build. Components allows only the
// recognized slot keys; anything else is rejected at decode time.
type buildRequest struct {
	Components   models.Build `json:"components"`
	Overclocking bool         `json:"overclocking,omitempty"`
}

func (r *buildRequest) build() *models.Build {
	b := r.Components
	b.Overclocking = b.Overclocking || r.Overclocking
	return &b
}

type checkRequest struct {
	Candidate    models.Component `json:"candidate"`
	Components   models.Build     `json:"components"`
	Overclocking bool             `json:"overclocking,omitempty"`
}

type searchRequest struct {
	Query      string               `json:"query,omitempty"`
	Slot       models.ComponentType `json:"slot,omitempty"`
	Components models.Build         `json:"components"`
}

// decodeStrict parses the request body, rejecting unknown keys anywhere in
// the payload. Malformed input is a client error, never a crash.
func decodeStrict(c *fiber.Ctx, v any) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func badRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
}

func (h *handlers) validateBuild(c *fiber.Ctx) error {
	var req buildRequest
	if err := decodeStrict(c, &req); err != nil {
		return badRequest(c)
	}

	return c.JSON(compat.ValidateBuild(req.build()))
}

func (h *handlers) powerAnalysis(c *fiber.Ctx) error {
	var req buildRequest
	if err := decodeStrict(c, &req); err != nil {
		return badRequest(c)
	}

	return c.JSON(compat.CalculatePowerRequirements(req.build()))
}

func (h *handlers) activeFilters(c *fiber.Ctx) error {
	var req buildRequest
	if err := decodeStrict(c, &req); err != nil {
		return badRequest(c)
	}

	return c.JSON(compat.DeriveActiveFilters(req.build()))
}

func (h *handlers) exportBuild(c *fiber.Ctx) error {
	var req buildRequest
	if err := decodeStrict(c, &req); err != nil {
		return badRequest(c)
	}

	build := req.build()
	power := compat.CalculatePowerRequirements(build)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(export.FormatBuild(build, power))
}

func (h *handlers) checkComponent(c *fiber.Ctx) error {
	var req checkRequest
	if err := decodeStrict(c, &req); err != nil {
		return badRequest(c)
	}

	build := req.Components
	build.Overclocking = build.Overclocking || req.Overclocking
	return c.JSON(compat.CheckComponentCompatibility(&req.Candidate, &build))
}

func (h *handlers) searchComponents(c *fiber.Ctx) error {
	var req searchRequest
	if err := decodeStrict(c, &req); err != nil {
		return badRequest(c)
	}

	build := req.Components
	filters := compat.DeriveActiveFilters(&build)
	results := h.catalog.Search(catalog.Query{
		Text:    req.Query,
		Slot:    req.Slot,
		Filters: filters,
	}, &build)

	return c.JSON(fiber.Map{"filters": filters, "results": results})
}

func (h *handlers) saveBuild(c *fiber.Ctx) error {
	var req buildRequest
	if err := decodeStrict(c, &req); err != nil {
		return badRequest(c)
	}

	id, err := h.builds.Save(c.Context(), req.build())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error saving build"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (h *handlers) getBuild(c *fiber.Ctx) error {
	build, err := h.builds.Get(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Build not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error loading build"})
	}
	return c.JSON(build)
}

func (h *handlers) deleteBuild(c *fiber.Ctx) error {
	err := h.builds.Delete(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Build not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting build"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
