package routes

import (
	"github.com/plateful/plateful-backend/internal/api/handlers"
	"github.com/plateful/plateful-backend/internal/middleware"
	"github.com/plateful/plateful-backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	ImpactHandler       handlers.ImpactHandler
	GamificationHandler handlers.GamificationHandler
	IngredientHandler   handlers.IngredientHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Impact()
	c.Gamification()
	c.Ingredients()
	c.GuestRoute()
}

func (c *Config) Impact() {
	// health stays outside the auth group so load balancers can probe it
	c.App.Get("/api/v1/impact/health", c.ImpactHandler.Health)

	impact := c.App.Group("/api/v1/impact", c.Middleware.AuthMiddleware(c.JWTService))
	{
		impact.Post("/calculate", c.ImpactHandler.LogEvent)
		impact.Post("/estimate", c.ImpactHandler.Estimate)
		impact.Post("/estimate-recipe", c.ImpactHandler.EstimateRecipe)
		impact.Get("/summary", c.ImpactHandler.GetSummary)
		impact.Get("/week", c.ImpactHandler.GetWeek)
		impact.Get("/history", c.ImpactHandler.GetHistory)
		impact.Get("/export", c.ImpactHandler.ExportHistory)
		impact.Post("/:id/reverse", c.ImpactHandler.ReverseEvent)
		impact.Delete("/:id", c.ImpactHandler.DeleteEvent)
	}
}

func (c *Config) Gamification() {
	gamification := c.App.Group("/api/v1/gamification", c.Middleware.AuthMiddleware(c.JWTService))
	{
		gamification.Get("", c.GamificationHandler.GetState)
		gamification.Put("/goal", c.GamificationHandler.UpdateWeeklyGoal)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.JWTService))
	{
		ingredients.Get("", c.IngredientHandler.Search)
		ingredients.Post("/resolve", c.IngredientHandler.Resolve)
		ingredients.Post("/import", c.Middleware.OnlyAdmin, c.IngredientHandler.ImportDataset)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
