package main

import (
	_ "github.com/gems85/bolt-quotes-proxy/docs"
	"github.com/gems85/bolt-quotes-proxy/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           EV Charger Quote Service API
// @version         1.0
// @description     Quote generation and lifecycle service for EV charger installations, backed by an Airtable base.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
