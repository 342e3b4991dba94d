package main

import (
	"smarthire-api/core/logger"
	"smarthire-api/core/server"
)

// @title SmartHire API
// @version 1.0
// @description Recruiting backend: jobs, candidates and automated interview scheduling

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
