package routes

import (
	"FoodBuzz-Backend/internal/api/handlers"
	"FoodBuzz-Backend/internal/middleware"
	"FoodBuzz-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	AuthHandler    handlers.AuthHandler
	FoodHandler    handlers.FoodHandler
	RequestHandler handlers.RequestHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Foods()
	c.Requests()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("FoodBuzz server is running")
	})
	c.App.Post("/jwt", c.AuthHandler.CreateToken)
}

func (c *Config) Foods() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	// public browsing
	c.App.Get("/limitFoods", c.FoodHandler.GetTopFoods)
	c.App.Get("/foods", c.FoodHandler.GetFoods)
	c.App.Get("/foods/:id", c.FoodHandler.GetFoodByID)

	// donor-facing routes; the image route is registered before the :id one
	// so the static segment wins
	c.App.Post("/createFood/image", auth, c.FoodHandler.UploadFoodImage)
	c.App.Post("/createFood", auth, c.FoodHandler.CreateFood)
	c.App.Get("/createFood", auth, c.FoodHandler.GetMyFoods)
	c.App.Get("/createFood/:id", c.FoodHandler.GetFoodByID)
	c.App.Put("/createFood/:id", auth, c.FoodHandler.UpdateFood)
	c.App.Delete("/createFood/:id", auth, c.FoodHandler.DeleteFood)
}

func (c *Config) Requests() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Get("/requestFood", auth, c.RequestHandler.GetMyRequests)
	c.App.Get("/requestFood/:id", auth, c.RequestHandler.GetRequestsByFoodID)
	c.App.Get("/reqFood/:id", c.RequestHandler.GetRequestByFoodID)
	c.App.Post("/requestFood", auth, c.RequestHandler.CreateRequest)
	c.App.Delete("/requestFood/:id", auth, c.RequestHandler.DeleteRequest)
	c.App.Patch("/requestFood/:id", auth, c.RequestHandler.UpdateRequestStatus)
}
