package main

import (
	"context"
	"log"

	"FoodBuzz-Backend/cmd/config"
	"FoodBuzz-Backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	ctx := context.Background()
	client, err := config.ConnectDB(ctx)
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("error disconnecting from database: %v", err)
		}
	}()

	dbName := utils.GetConfig("DB_NAME")
	if dbName == "" {
		dbName = "foodBuzz"
	}

	app, err := config.NewApp(client.Database(dbName))
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "5000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
