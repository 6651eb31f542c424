package handlers

import (
	"encoding/base64"

	"marketplace/internal/domain"
	applog "marketplace/internal/log"
	"marketplace/internal/marketerrors"
	"marketplace/internal/repos"
	"marketplace/internal/validate"

	"github.com/gofiber/fiber/v2"
)

// ImageHandler exposes the shared image catalog. Payloads are never listed.
type ImageHandler struct {
	Images repos.ImageStore
}

// GET /images
func (h *ImageHandler) Grouped(c *fiber.Ctx) error {
	imgs, err := h.Images.List(c.UserContext())
	if err != nil {
		return fail(c, "images.list", err, nil)
	}
	out := map[string][]domain.Image{}
	for _, img := range imgs {
		key := img.ProductNumber
		if key == "" {
			key = "uncategorized"
		}
		out[key] = append(out[key], img)
	}
	return c.JSON(out)
}

// GET /images/product-numbers
func (h *ImageHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Images.Categories(c.UserContext())
	if err != nil {
		return fail(c, "images.categories", err, nil)
	}
	return c.JSON(cats)
}

// GET /images/product-number/:n
func (h *ImageHandler) ByCategory(c *fiber.Ctx) error {
	pn, ok := validate.Category(c.Params("n"))
	if !ok {
		return badRequest(c, "images.by_category", "product number must be two digits")
	}
	imgs, err := h.Images.ListByCategory(c.UserContext(), pn)
	if err != nil {
		return fail(c, "images.by_category", err, nil)
	}
	if len(imgs) == 0 {
		applog.Info(c, "images.by_category.empty", map[string]any{"product_number": pn})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No images found for product_number: " + pn})
	}
	return c.JSON(imgs)
}

type imageRequest struct {
	ID            string `json:"id"`
	Base64        string `json:"base64"`
	Description   string `json:"image_description"`
	ProductNumber string `json:"product_number"`
}

// POST /admin/images
func (h *ImageHandler) Create(c *fiber.Ctx) error {
	var req imageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "images.create", "invalid request payload")
	}
	id, ok := validate.ID(req.ID)
	if !ok {
		return badRequest(c, "images.create", "invalid image id")
	}
	if _, err := base64.StdEncoding.DecodeString(req.Base64); err != nil || req.Base64 == "" {
		return badRequest(c, "images.create", "base64 must be standard base64 image data")
	}
	if req.ProductNumber != "" {
		if _, ok := validate.Category(req.ProductNumber); !ok {
			return badRequest(c, "images.create", "product number must be two digits")
		}
	}
	img := domain.Image{ID: id, Base64: req.Base64, Description: req.Description, ProductNumber: req.ProductNumber}
	added, err := h.Images.Create(c.UserContext(), img)
	if err != nil {
		return fail(c, "images.create", err, map[string]any{"image_id": id})
	}
	if !added {
		return fail(c, "images.create", marketerrors.Invalid("image %s already exists", id), nil)
	}
	applog.Audit(c, "images.create", map[string]any{"image_id": id, "product_number": req.ProductNumber})
	img.Base64 = ""
	return c.Status(fiber.StatusCreated).JSON(img)
}
