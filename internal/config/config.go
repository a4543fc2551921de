package config

import "os"

type Config struct {
	Addr        string
	DatabaseURL string
	AdminKey    string
	JWTSecret   string
	StorageDir  string
	RedisAddr   string
}

func Load() Config {
	return Config{
		Addr:        getenv("ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AdminKey:    os.Getenv("ADMIN_API_KEY"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		StorageDir:  getenv("STORAGE_DIR", ".arisport"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
