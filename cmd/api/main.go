package main

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/omaatv/eticaret-projem/internal/auth"
	"github.com/omaatv/eticaret-projem/internal/cart"
	"github.com/omaatv/eticaret-projem/internal/category"
	"github.com/omaatv/eticaret-projem/internal/config"
	"github.com/omaatv/eticaret-projem/internal/product"
	"github.com/omaatv/eticaret-projem/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger(logger))

	var (
		productRepo  product.Repository
		categoryRepo category.Repository
		userRepo     user.Repository
	)
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, using in-memory repositories")
		productRepo = product.NewInMemoryRepository(nil)
		categoryRepo = category.NewInMemoryRepository(nil)
		userRepo = user.NewInMemoryRepository(nil)
	} else {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		ensureSchema(db)
		productRepo = product.NewPostgresRepository(db)
		categoryRepo = category.NewPostgresRepository(db)
		userRepo = user.NewPostgresRepository(db)
	}

	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)
	productHandler.RegisterPublicRoutes(app)

	categoryHandler := category.NewHandler(category.NewService(categoryRepo))
	categoryHandler.RegisterPublicRoutes(app)

	cartHandler := cart.NewHandler(productService)
	cartHandler.RegisterRoutes(app)

	userHandler := user.NewHandler(user.NewService(userRepo), cfg.JWTSecret)
	userHandler.RegisterPublicRoutes(app)

	admin := app.Group("/api/admin", auth.AdminKeyGuard(cfg.AdminKey))
	productHandler.RegisterAdminRoutes(admin)

	app.Use("/api/v1/profile", jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	userHandler.RegisterProtectedRoutes(app)

	logger.Info("starting server", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, X-ADMIN-KEY, Authorization",
	}))
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	}
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

func ensureSchema(db *sql.DB) {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC NOT NULL DEFAULT 0,
			stock INT NOT NULL DEFAULT 0,
			main_image TEXT,
			is_featured INT NOT NULL DEFAULT 0,
			is_new INT NOT NULL DEFAULT 0,
			category_id INT REFERENCES categories(id),
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'customer',
			created_at TEXT,
			updated_at TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
