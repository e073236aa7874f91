package handlers

import (
	"log"

	"panchmev/internal/middleware"
	"panchmev/internal/models"
	"panchmev/internal/repositories"
	"panchmev/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PageHandler serves the role-gated page routes. Pages are JSON
// payloads the front end renders; the guard middleware decides whether
// a request gets this far.
type PageHandler struct {
	products *services.ProductService
	contacts *services.ContactService
	orders   *services.OrderService
	stats    *services.StatsService
	teamRepo repositories.TeamRepository
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(
	products *services.ProductService,
	contacts *services.ContactService,
	orders *services.OrderService,
	stats *services.StatsService,
	teamRepo repositories.TeamRepository,
) *PageHandler {
	return &PageHandler{
		products: products,
		contacts: contacts,
		orders:   orders,
		stats:    stats,
		teamRepo: teamRepo,
	}
}

// RegisterPublicRoutes registers the team listing under the API group.
func (h *PageHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/team", h.HandleTeam)
}

// HandleTeam returns the team members shown on the about page.
func (h *PageHandler) HandleTeam(c *fiber.Ctx) error {
	members, err := h.teamRepo.GetAll()
	if err != nil {
		log.Printf("Error listing team members: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve team",
			"error":   err.Error(),
		})
	}
	return c.JSON(members)
}

// HandleHome renders the storefront landing page.
func (h *PageHandler) HandleHome(c *fiber.Ctx) error {
	products, err := h.products.ListAll()
	if err != nil {
		log.Printf("Error loading home page products: %v", err)
		products = nil
	}
	if len(products) > 4 {
		products = products[:4]
	}
	return c.JSON(fiber.Map{
		"page":     "home",
		"featured": products,
	})
}

// HandleAbout renders the about page with the team listing.
func (h *PageHandler) HandleAbout(c *fiber.Ctx) error {
	members, err := h.teamRepo.GetAll()
	if err != nil {
		log.Printf("Error loading about page team: %v", err)
		members = nil
	}
	return c.JSON(fiber.Map{
		"page": "about",
		"team": members,
	})
}

// HandleProducts renders the full catalog page.
func (h *PageHandler) HandleProducts(c *fiber.Ctx) error {
	products, err := h.products.ListAll()
	if err != nil {
		log.Printf("Error loading products page: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"page":     "products",
		"products": products,
	})
}

// HandleContactPage renders the contact form metadata.
func (h *PageHandler) HandleContactPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":       "contact",
		"interests":  models.ProductCategories,
		"submit_url": "/api/contact",
	})
}

// HandleDashboard renders the signed-in user's dashboard.
func (h *PageHandler) HandleDashboard(c *fiber.Ctx) error {
	user, _ := c.Locals(middleware.LocalUser).(*models.User)
	if user == nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	orders, err := h.orders.GetByUser(user.ID)
	if err != nil {
		log.Printf("Error loading dashboard orders for %s: %v", user.ID, err)
		orders = nil
	}
	return c.JSON(fiber.Map{
		"page":   "dashboard",
		"user":   user,
		"orders": orders,
	})
}

// HandleAdminDashboard renders the stats overview.
func (h *PageHandler) HandleAdminDashboard(c *fiber.Ctx) error {
	stats, err := h.stats.Compute()
	if err != nil {
		log.Printf("Error loading admin dashboard stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute statistics",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"page":  "admin-dashboard",
		"stats": stats,
	})
}

// HandleManageImages renders the product management page.
func (h *PageHandler) HandleManageImages(c *fiber.Ctx) error {
	products, err := h.products.ListAll()
	if err != nil {
		log.Printf("Error loading manage-images page: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"page":       "manage-images",
		"products":   products,
		"categories": models.ProductCategories,
	})
}

// HandleManageContacts renders the contact management page.
func (h *PageHandler) HandleManageContacts(c *fiber.Ctx) error {
	messages, err := h.contacts.List(c.Query("q"))
	if err != nil {
		log.Printf("Error loading manage-contacts page: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve messages",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"page":     "manage-contacts",
		"messages": messages,
	})
}

// HandleLoginPage and HandleSignupPage exist so the unauthenticated
// routes have something to land on; the RedirectAuthenticated guard
// bounces signed-in users before they get here.
func (h *PageHandler) HandleLoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "login"})
}

func (h *PageHandler) HandleSignupPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"page": "signup"})
}
