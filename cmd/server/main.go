package main

import (
	"log"
	"net/http"

	"church_admin/internal/config"
	"church_admin/internal/logger"
	"church_admin/internal/middleware"
	"church_admin/internal/routes"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	// Connect the persistence layer (Postgres or in-memory demo mode)
	config.InitStore()

	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :8080")
	log.Fatal(http.ListenAndServe("0.0.0.0:8080", handler))
}
