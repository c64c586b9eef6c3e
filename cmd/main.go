package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	bloghandler "github.com/Nikhar-savaliya/blogsite-api/internal/blog/handler"
	blogrepo "github.com/Nikhar-savaliya/blogsite-api/internal/blog/repository/mongo"
	blogservice "github.com/Nikhar-savaliya/blogsite-api/internal/blog/service"
	"github.com/Nikhar-savaliya/blogsite-api/internal/middleware"
	userhandler "github.com/Nikhar-savaliya/blogsite-api/internal/user/handler"
	userrepo "github.com/Nikhar-savaliya/blogsite-api/internal/user/repository/mongo"
	userservice "github.com/Nikhar-savaliya/blogsite-api/internal/user/service"

	"github.com/Nikhar-savaliya/blogsite-api/config"
	"github.com/Nikhar-savaliya/blogsite-api/db"
)

const startupTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	client, err := db.NewMongoClient(ctx, cfg.MongoURL)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	database := client.Database(cfg.DBName)

	userRepo := userrepo.NewUserRepository(database)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.Error("index creation failed", "error", err)
		os.Exit(1)
	}
	blogRepo := blogrepo.NewBlogRepository(database)

	tokenService := userservice.NewTokenService(cfg.JWTSecret, cfg.JWTExpiryMinutes)
	userService := userservice.NewUserService(userRepo, tokenService, logger)
	blogService := blogservice.NewBlogService(blogRepo, userRepo, logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "hello world"})
	})

	userhandler.RegisterRoutes(app, userhandler.NewUserHandler(userService))
	bloghandler.RegisterRoutes(app, bloghandler.NewBlogHandler(blogService), tokenService)

	logger.Info("server listening", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
