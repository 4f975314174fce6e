package config

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/plateful/plateful-backend/internal/api/handlers"
	"github.com/plateful/plateful-backend/internal/api/routes"
	"github.com/plateful/plateful-backend/internal/middleware"
	"github.com/plateful/plateful-backend/internal/utils"
	"github.com/plateful/plateful-backend/internal/utils/logging"
	"github.com/plateful/plateful-backend/internal/utils/storage"
	"github.com/plateful/plateful-backend/pkg/gamification"
	"github.com/plateful/plateful-backend/pkg/impact"
	"github.com/plateful/plateful-backend/pkg/ingredient"
	"github.com/plateful/plateful-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, log *logging.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	loc, err := time.LoadLocation(utils.GetConfig("IMPACT_TIMEZONE"))
	if err != nil {
		log.Warn("invalid IMPACT_TIMEZONE, falling back to UTC", "error", err)
		loc = time.UTC
	}
	weekStart := gamification.ParseWeekday(utils.GetConfig("IMPACT_WEEK_START"))
	defaultGoal, err := strconv.ParseFloat(utils.GetConfig("IMPACT_WEEKLY_GOAL_KG"), 64)
	if err != nil || defaultGoal <= 0 {
		defaultGoal = 2.0
	}
	threshold, err := strconv.ParseFloat(utils.GetConfig("IMPACT_MATCH_THRESHOLD"), 64)
	if err != nil || threshold <= 0 || threshold > 1 {
		threshold = ingredient.DefaultMatchThreshold
	}

	// Repository
	ingredientRepository := ingredient.NewIngredientRepository(db)
	impactRepository := impact.NewImpactRepository(db)
	gamificationRepository := gamification.NewGamificationRepository(db)

	resolver := ingredient.NewResolver(ingredientRepository, ingredient.NewLevenshteinMatcher(), threshold, log)
	if err := resolver.Reload(context.Background()); err != nil {
		log.Warn("ingredient reference cache not loaded, resolving with defaults until import", "error", err)
	}
	calculator := impact.NewCalculator()
	engine := gamification.NewEngine(loc, weekStart, defaultGoal, gamification.DefaultBadgeRules)

	// Service
	jwtService := jwt.NewJWTService()
	ingredientService := ingredient.NewIngredientService(ingredientRepository, resolver, s3, log)
	gamificationService := gamification.NewGamificationService(gamificationRepository, engine)
	impactService := impact.NewImpactService(
		db,
		impactRepository,
		gamificationRepository,
		resolver,
		calculator,
		engine,
		s3,
		log,
	)

	// Handler
	impactHandler := handlers.NewImpactHandler(impactService, validator, db)
	gamificationHandler := handlers.NewGamificationHandler(gamificationService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		ImpactHandler:       impactHandler,
		GamificationHandler: gamificationHandler,
		IngredientHandler:   ingredientHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
