package routes

import (
	"ReliefStock-Backend/domain"
	"ReliefStock-Backend/internal/api/handlers"
	"ReliefStock-Backend/internal/middleware"
	"ReliefStock-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	DonorHandler    handlers.DonorHandler
	ReceiverHandler handlers.ReceiverHandler
	ItemHandler     handlers.ItemHandler
	DonationHandler handlers.DonationHandler
	RequestHandler  handlers.RequestHandler
	AlertHandler    handlers.AlertHandler
	CategoryHandler handlers.CategoryHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Donors()
	c.Receivers()
	c.Items()
	c.Donations()
	c.Requests()
	c.Alerts()
	c.Categories()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/login", c.UserHandler.Login)
		user.Post("/register",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.RoleMiddleware(domain.RoleAdmin),
			c.UserHandler.Register,
		)
		user.Get("",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.RoleMiddleware(domain.RoleAdmin),
			c.UserHandler.GetUsers,
		)
		user.Patch("/:id/deactivate",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.RoleMiddleware(domain.RoleAdmin),
			c.UserHandler.DeactivateUser,
		)
		user.Delete("/:id",
			c.Middleware.AuthMiddleware(c.JWTService),
			c.Middleware.RoleMiddleware(domain.RoleAdmin),
			c.UserHandler.DeleteUser,
		)
	}
}

func (c *Config) Donors() {
	donors := c.App.Group("/api/v1/donors", c.Middleware.AuthMiddleware(c.JWTService))

	donors.Get("", c.DonorHandler.GetDonors)
	donors.Get("/:id", c.DonorHandler.GetDonorDetails)

	admin := c.Middleware.RoleMiddleware(domain.RoleAdmin)
	donors.Post("", admin, c.DonorHandler.CreateDonor)
	donors.Put("/:id", admin, c.DonorHandler.UpdateDonor)
	donors.Delete("/:id", admin, c.DonorHandler.DeleteDonor)
}

func (c *Config) Receivers() {
	receivers := c.App.Group("/api/v1/receivers", c.Middleware.AuthMiddleware(c.JWTService))

	receivers.Get("", c.ReceiverHandler.GetReceivers)
	receivers.Get("/:id", c.ReceiverHandler.GetReceiverDetails)

	admin := c.Middleware.RoleMiddleware(domain.RoleAdmin)
	receivers.Post("", admin, c.ReceiverHandler.CreateReceiver)
	receivers.Put("/:id", admin, c.ReceiverHandler.UpdateReceiver)
	receivers.Delete("/:id", admin, c.ReceiverHandler.DeleteReceiver)
}

func (c *Config) Items() {
	items := c.App.Group("/api/v1/items", c.Middleware.AuthMiddleware(c.JWTService))

	items.Get("/dashboard", c.ItemHandler.GetDashboardStats)
	items.Get("/expiring", c.ItemHandler.GetExpiringItems)
	items.Get("/expired", c.ItemHandler.GetExpiredItems)

	items.Get("", c.ItemHandler.GetItems)
	items.Get("/:id", c.ItemHandler.GetItemDetails)

	contributor := c.Middleware.RoleMiddleware(domain.RoleDonor, domain.RoleAdmin)
	items.Post("", contributor, c.ItemHandler.AddItem)
	items.Put("/:id", contributor, c.ItemHandler.UpdateItem)
	items.Post("/image", contributor, c.ItemHandler.UploadItemImage)
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))

	donations.Get("", c.DonationHandler.GetDonations)
	donations.Get("/:id", c.DonationHandler.GetDonationDetails)
	donations.Post("",
		c.Middleware.RoleMiddleware(domain.RoleAdmin),
		c.DonationHandler.RecordDonation,
	)
}

func (c *Config) Requests() {
	requests := c.App.Group("/api/v1/requests", c.Middleware.AuthMiddleware(c.JWTService))

	requests.Get("", c.RequestHandler.GetRequests)
	requests.Get("/:id", c.RequestHandler.GetRequestDetails)
	requests.Post("",
		c.Middleware.RoleMiddleware(domain.RoleReceiver, domain.RoleAdmin),
		c.RequestHandler.CreateRequest,
	)
	requests.Patch("/:id/resolve",
		c.Middleware.RoleMiddleware(domain.RoleAdmin),
		c.RequestHandler.ResolveRequest,
	)
	requests.Delete("/:id",
		c.Middleware.RoleMiddleware(domain.RoleReceiver, domain.RoleAdmin),
		c.RequestHandler.DeleteRequest,
	)
}

func (c *Config) Alerts() {
	alerts := c.App.Group("/api/v1/alerts",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleAdmin),
	)

	alerts.Post("/check", c.AlertHandler.RunExpiryCheck)
	alerts.Get("", c.AlertHandler.GetAlerts)
	alerts.Get("/logs", c.AlertHandler.GetAlertLogs)
	alerts.Patch("/:id/acknowledge", c.AlertHandler.AcknowledgeAlert)
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories", c.Middleware.AuthMiddleware(c.JWTService))

	categories.Get("", c.CategoryHandler.GetCategories)
	categories.Post("/predict", c.CategoryHandler.PredictCategory)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
