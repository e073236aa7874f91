package handlers

import (
	"errors"
	"log"
	"mime/multipart"
	"strconv"

	"panchmev/internal/models"
	"panchmev/internal/repositories"
	"panchmev/internal/services"
	"panchmev/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	images   *storage.ImageStore
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, images *storage.ImageStore) *ProductHandler {
	return &ProductHandler{
		service:  service,
		images:   images,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the read-only catalog routes.
func (h *ProductHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/products", h.HandleList)
	router.Get("/products/:id", h.HandleGetByID)
}

// RegisterAdminRoutes registers the catalog management routes.
func (h *ProductHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/products", h.HandleCreate)
	router.Put("/products/:id", h.HandleUpdate)
	router.Delete("/products/:id", h.HandleDelete)
}

// HandleList returns the merged catalog.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	products, err := h.service.ListAll()
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetByID returns a single product.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleCreate adds a product from the admin multipart form. The image
// is required here; the upload happens before the row is written so a
// failed save never leaves a product without a picture.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	product, file, err := h.parseProductForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product form",
			"error":   err.Error(),
		})
	}

	if file == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Image is required",
		})
	}

	imageURL, err := h.images.Save(file)
	if err != nil {
		log.Printf("Error saving product image: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not save image",
			"error":   err.Error(),
		})
	}
	product.ImageURL = imageURL

	if err := h.validate.Struct(product); err != nil {
		return validationError(c, err)
	}

	if err := h.service.Create(product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdate replaces a product's fields. The image is optional on
// update; when omitted the prior image is retained.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")
	existing, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error loading product %s for update: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}

	product, file, err := h.parseProductForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product form",
			"error":   err.Error(),
		})
	}

	product.ID = existing.ID
	product.Model = existing.Model
	product.ImageURL = existing.ImageURL
	if file != nil {
		imageURL, err := h.images.Save(file)
		if err != nil {
			log.Printf("Error saving product image: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not save image",
				"error":   err.Error(),
			})
		}
		product.ImageURL = imageURL
	}

	if err := h.validate.Struct(product); err != nil {
		return validationError(c, err)
	}

	if err := h.service.Update(product); err != nil {
		log.Printf("Error updating product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}

	return c.JSON(product)
}

// HandleDelete removes a product by its ID.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error deleting product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// parseProductForm reads the multipart fields shared by create and
// update. A missing image file is not an error here; create and update
// disagree on whether it is required.
func (h *ProductHandler) parseProductForm(c *fiber.Ctx) (*models.Product, *multipart.FileHeader, error) {
	rating := 0.0
	if raw := c.FormValue("rating"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, errors.New("rating must be a number between 0 and 5")
		}
		rating = parsed
	}

	product := &models.Product{
		Name:        c.FormValue("name"),
		Category:    c.FormValue("category"),
		Price:       c.FormValue("price"),
		Rating:      rating,
		Description: c.FormValue("description"),
	}

	file, err := c.FormFile("image")
	if err != nil {
		file = nil // no image attached
	}
	return product, file, nil
}
