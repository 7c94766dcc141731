package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AutoServeHQ/service-scheduler/internal/config"
	dbpkg "github.com/AutoServeHQ/service-scheduler/internal/db"
	"github.com/AutoServeHQ/service-scheduler/internal/middleware"
	"github.com/AutoServeHQ/service-scheduler/internal/routes"
)

func main() {

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
