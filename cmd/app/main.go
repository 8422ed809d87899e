package main

import (
	"okshouse/config"
	"okshouse/di"
	"okshouse/shared/logger"

	_ "okshouse/docs"
)

// @title Oks House API
// @version 1.0
// @description Reservation backend for the Oks vacation house.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
