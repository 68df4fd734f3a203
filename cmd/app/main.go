package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/ogradyo/restaurant-simulator/cmd"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}
	if err := app.Start(configs.AsyncRouting); err != nil {
		log.Fatalf("Failed to start background workers: %v", err)
	}
	defer app.Shutdown()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		AmqpURL:      goDotEnvVariable("AMQP_URL"),
		OutputDir:    goDotEnvVariable("OUTPUT_DIR"),
		RestaurantID: goDotEnvVariable("RESTAURANT_ID"),
		AsyncRouting: goDotEnvVariable("ASYNC_ROUTING") == "true",
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.OutputDir == "" {
		config.OutputDir = "deliveries"
	}
	return config
}

func goDotEnvVariable(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.HTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
