// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/akinalp/mqvi-directory/pkg/ratelimit"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/mqvi.db)
}

// JWTConfig, access token doğrulama ayarları.
type JWTConfig struct {
	Secret string // auth servisiyle AYNI secret olmalı, GİZLİ TUTULMALI
}

// CORSConfig, izin verilen origin'ler.
type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig, browse endpoint'leri için IP bazlı limit.
type RateLimitConfig struct {
	Requests       int // pencere başına istek; 0 = kapalı
	Window         time.Duration
	TrustedProxies ratelimit.TrustedProxies // forwarding header'larına güvenilen proxy'ler
}

var defaultOrigins = []string{
	"http://localhost:3000", // Vite dev server
	"http://localhost:1420", // Tauri dev
	"tauri://localhost",     // Tauri production
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (yoksa sessizce devam eder).
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "9090"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	rateRequests, err := strconv.Atoi(getEnv("RATE_LIMIT_REQUESTS", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REQUESTS: %w", err)
	}
	if rateRequests < 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REQUESTS: must be >= 0")
	}

	rateWindow, err := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECONDS", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW_SECONDS: %w", err)
	}
	if rateWindow <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW_SECONDS: must be > 0")
	}

	trustedProxies, err := ratelimit.ParseTrustedProxies(splitList(getEnv("TRUSTED_PROXIES", ""), nil))
	if err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/mqvi.db"),
		},
		JWT: JWTConfig{
			Secret: jwtSecret,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", ""), defaultOrigins),
		},
		RateLimit: RateLimitConfig{
			Requests:       rateRequests,
			Window:         time.Duration(rateWindow) * time.Second,
			TrustedProxies: trustedProxies,
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:9090").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// splitList, virgülle ayrılmış listeyi parse eder. Boşsa fallback döner.
func splitList(raw string, fallback []string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
