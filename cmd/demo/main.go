// Command demo walks through the client-side stores: it hydrates a cart
// and a session from persistent storage, mutates them and prints the
// resulting state. Run it twice to see the state survive restarts.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/omaatv/eticaret-projem/internal/cart"
	"github.com/omaatv/eticaret-projem/internal/config"
	"github.com/omaatv/eticaret-projem/internal/session"
	"github.com/omaatv/eticaret-projem/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	store := openStorage(cfg, logger)

	cartStore := cart.NewStore(store, logger)
	fmt.Printf("cart on startup: %d items, total %.2f\n", cartStore.Count(), cartStore.Total())

	cartStore.Add(cart.Item{
		ProductID: 3,
		Name:      "Koşu Ayakkabısı",
		Slug:      "kosu-ayakkabisi",
		UnitPrice: 1499,
	}, 1)
	cartStore.Add(cart.Item{
		ProductID: 3,
		Name:      "Koşu Ayakkabısı",
		Slug:      "kosu-ayakkabisi",
		UnitPrice: 1499,
	}, 2)
	cartStore.UpdateQuantity(3, 2)
	fmt.Printf("cart after shopping: %d items, total %.2f\n", cartStore.Count(), cartStore.Total())

	sessionStore := session.NewStore(store, session.NewDemoAuthenticator(), logger)
	if current, ok := sessionStore.Current(); ok {
		fmt.Printf("restored session for %s (admin=%v)\n", current.Email, current.IsAdmin())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	u, err := sessionStore.Login(ctx, "admin@arisport.com", "Admin123")
	if err != nil {
		logger.Fatal("login failed", zap.Error(err))
	}
	fmt.Printf("logged in as %s, role=%s\n", u.Name, u.Role)
}

func openStorage(cfg config.Config, logger *zap.Logger) storage.Storage {
	if cfg.RedisAddr != "" {
		st, err := storage.NewRedis(cfg.RedisAddr, "arisport")
		if err != nil {
			logger.Fatal("redis unavailable", zap.Error(err))
		}
		logger.Info("using redis storage", zap.String("addr", cfg.RedisAddr))
		return st
	}

	st, err := storage.NewFile(cfg.StorageDir)
	if err != nil {
		logger.Fatal("cannot open storage dir", zap.Error(err))
	}
	logger.Info("using file storage", zap.String("dir", cfg.StorageDir))
	return st
}
