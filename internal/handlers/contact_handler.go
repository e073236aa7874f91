package handlers

import (
	"errors"
	"log"

	"panchmev/internal/models"
	"panchmev/internal/repositories"
	"panchmev/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles HTTP requests for contact messages.
type ContactHandler struct {
	service  *services.ContactService
	validate *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the public contact-form route.
func (h *ContactHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleSubmit)
}

// RegisterAdminRoutes registers the message management routes.
func (h *ContactHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/contact", h.HandleList)
	router.Put("/contact/:id", h.HandleUpdate)
	router.Delete("/contact/:id", h.HandleDelete)
}

// ContactRequest is the wire shape of a contact form submission. The
// admin grid edits use the same field names.
type ContactRequest struct {
	FirstName       string `json:"firstName" validate:"required,max=100"`
	LastName        string `json:"lastName" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,max=20"`
	ProductInterest string `json:"productInterest" validate:"omitempty,max=100"`
	Message         string `json:"message" validate:"required,max=2000"`
}

func (r ContactRequest) toModel() models.ContactMessage {
	return models.ContactMessage{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		ProductInterest: r.ProductInterest,
		Message:         r.Message,
	}
}

// HandleSubmit stores a message from the public contact form.
func (h *ContactHandler) HandleSubmit(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing contact request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	msg := req.toModel()
	if err := h.service.Submit(&msg); err != nil {
		log.Printf("Error storing contact message: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not submit message",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Message submitted successfully",
		"data":    msg,
	})
}

// HandleList returns all messages, optionally narrowed by the q query
// parameter (case-insensitive substring across every text field).
func (h *ContactHandler) HandleList(c *fiber.Ctx) error {
	messages, err := h.service.List(c.Query("q"))
	if err != nil {
		log.Printf("Error listing contact messages: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve messages",
			"error":   err.Error(),
		})
	}
	return c.JSON(messages)
}

// HandleUpdate replaces the editable fields of one message.
func (h *ContactHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing contact update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	updated, err := h.service.Update(id, req.toModel())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Contact message not found",
			})
		}
		log.Printf("Error updating contact %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update message",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Contact updated successfully",
		"data":    updated,
	})
}

// HandleDelete removes a message by its ID.
func (h *ContactHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Contact message not found",
			})
		}
		log.Printf("Error deleting contact %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete message",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Contact deleted successfully",
	})
}
