package config

import (
	"os"

	"FoodBuzz-Backend/internal/api/handlers"
	"FoodBuzz-Backend/internal/api/routes"
	"FoodBuzz-Backend/internal/middleware"
	"FoodBuzz-Backend/internal/utils"
	"FoodBuzz-Backend/internal/utils/storage"
	"FoodBuzz-Backend/pkg/food"
	"FoodBuzz-Backend/pkg/jwt"
	"FoodBuzz-Backend/pkg/request"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

func NewApp(db *mongo.Database) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	foodRepository := food.NewFoodRepository(db)
	requestRepository := request.NewRequestRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	foodService := food.NewFoodService(foodRepository, s3)
	requestService := request.NewRequestService(requestRepository, foodRepository)

	// Handler
	authHandler := handlers.NewAuthHandler(jwtService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		AuthHandler:    authHandler,
		FoodHandler:    foodHandler,
		RequestHandler: requestHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
