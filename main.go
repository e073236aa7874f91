package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"panchmev/internal/config"
	"panchmev/internal/handlers"
	"panchmev/internal/middleware"
	"panchmev/internal/models"
	"panchmev/internal/notify"
	"panchmev/internal/repositories"
	"panchmev/internal/services"
	"panchmev/internal/storage"
	"panchmev/internal/upstream"
	"panchmev/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ContactMessage{},
		&models.Order{},
		&models.TeamMember{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Image storage ---
	images, err := storage.NewImageStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize image store: %v", err)
	}

	// --- RabbitMQ (best effort: the site works without events) ---
	var events services.EventPublisher
	mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Printf("RabbitMQ unavailable, events disabled: %v", err)
	} else {
		defer mqClient.Close()
		events = mqClient
	}

	// --- Notifier ---
	var notifier notify.Notifier = notify.NewConsole()
	if cfg.SendGridAPIKey != "" {
		notifier = notify.NewSendGrid(cfg.SendGridAPIKey, cfg.MailFrom)
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	contactRepo := repositories.NewGORMContactRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	teamRepo := repositories.NewGORMTeamRepository(db)

	seedTeam(teamRepo)

	// --- Upstream catalog feed (optional second product source) ---
	var feed upstream.Feed
	if cfg.CatalogFeedURL != "" {
		feed = upstream.NewHTTPFeed(cfg.CatalogFeedURL)
	}

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	productService := services.NewProductService(productRepo, feed)
	contactService := services.NewContactService(contactRepo, events)
	orderService := services.NewOrderService(orderRepo, productRepo, events)
	statsService := services.NewStatsService(productRepo, contactRepo, userRepo, orderRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, images)
	contactHandler := handlers.NewContactHandler(contactService)
	orderHandler := handlers.NewOrderHandler(orderService)
	statsHandler := handlers.NewStatsHandler(statsService)
	pageHandler := handlers.NewPageHandler(productService, contactService, orderService, statsService, teamRepo)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())
	app.Static(cfg.UploadBaseURL, images.Dir())

	// --- API routes ---
	api := app.Group("/api")

	// Public API
	authHandler.RegisterRoutes(api)
	productHandler.RegisterPublicRoutes(api)
	contactHandler.RegisterPublicRoutes(api)
	pageHandler.RegisterPublicRoutes(api)

	// Any authenticated user
	userAPI := api.Group("", middleware.RequireRoles(authService, models.AllRoles()...))
	orderHandler.RegisterUserRoutes(userAPI)

	// Admin only
	adminAPI := api.Group("", middleware.RequireRoles(authService, models.RoleAdmin))
	productHandler.RegisterAdminRoutes(adminAPI)
	contactHandler.RegisterAdminRoutes(adminAPI)
	orderHandler.RegisterAdminRoutes(adminAPI)
	statsHandler.RegisterAdminRoutes(adminAPI)

	// --- Page routes ---
	anyRole := middleware.PageGuard(authService, models.AllRoles()...)
	app.Get("/", anyRole, pageHandler.HandleHome)
	app.Get("/about", anyRole, pageHandler.HandleAbout)
	app.Get("/products", anyRole, pageHandler.HandleProducts)
	app.Get("/contact", anyRole, pageHandler.HandleContactPage)
	app.Get("/dashboard", anyRole, pageHandler.HandleDashboard)

	adminOnly := middleware.PageGuard(authService, models.RoleAdmin)
	app.Get("/admin-dashboard", adminOnly, pageHandler.HandleAdminDashboard)
	app.Get("/admin/manage-images", adminOnly, pageHandler.HandleManageImages)
	app.Get("/admin/manage-contacts", adminOnly, pageHandler.HandleManageContacts)

	guestOnly := middleware.RedirectAuthenticated(authService)
	app.Get("/login", guestOnly, pageHandler.HandleLoginPage)
	app.Get("/signup", guestOnly, pageHandler.HandleSignupPage)

	// --- Health check ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": events != nil,
		})
	})

	// --- Notification worker ---
	if mqClient != nil {
		if err := mqClient.Consume(notificationHandler(notifier)); err != nil {
			log.Printf("Failed to start notification worker: %v", err)
		}
	}

	// --- Start HTTP server with graceful shutdown ---
	log.Printf("Starting server on %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openDatabase connects using the configured driver. sqlite is the
// development default; deployments set DB_DRIVER=postgres.
func openDatabase(cfg config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DBDriver)
	}
}

// notificationHandler routes events to the notifier. Contact
// submissions get an acknowledgement email; order events are logged for
// the fulfilment crew.
func notificationHandler(notifier notify.Notifier) func(msg amqp.Delivery) error {
	return func(msg amqp.Delivery) error {
		switch msg.RoutingKey {
		case services.EventContactCreated:
			var evt struct {
				ContactID string `json:"contactID"`
				Email     string `json:"email"`
				Name      string `json:"name"`
				Interest  string `json:"interest"`
			}
			if err := json.Unmarshal(msg.Body, &evt); err != nil {
				log.Printf("Bad contact event payload: %v", err)
				return nil // drop it, requeueing cannot fix a bad payload
			}
			if evt.Email == "" {
				return nil
			}
			body := fmt.Sprintf("Hi %s, thanks for reaching out to Panchmev. Our team will get back to you shortly.", evt.Name)
			return notifier.Notify(evt.Email, "We received your message", body)
		case services.EventOrderCreated:
			log.Printf("Order event received: %s", msg.Body)
			return nil
		default:
			log.Printf("Ignoring event with routing key %s", msg.RoutingKey)
			return nil
		}
	}
}

// seedTeam populates the team table on first boot so the about page has
// faces to show.
func seedTeam(repo repositories.TeamRepository) {
	existing, err := repo.GetAll()
	if err != nil {
		log.Printf("Error checking team table: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	members := []models.TeamMember{
		{Name: "Ramesh Patel", Title: "Founder & Head Farmer", PhotoURL: "/static/team/ramesh.jpg"},
		{Name: "Sunita Patel", Title: "Production Lead", PhotoURL: "/static/team/sunita.jpg"},
		{Name: "Arjun Mehta", Title: "Distribution Manager", PhotoURL: "/static/team/arjun.jpg"},
	}
	for i := range members {
		if err := repo.Create(&members[i]); err != nil {
			log.Printf("Error seeding team member %s: %v", members[i].Name, err)
		}
	}
}
