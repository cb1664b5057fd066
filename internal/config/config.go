package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config wires the optional side channels. Empty addresses disable the
// corresponding adapter; the ledger itself needs none of them.
type Config struct {
	HTTPAddr     string
	HotelName    string
	MongoURI     string
	RedisAddr    string
	RabbitURL    string
	AuditLogPath string
	OTLPEndpoint string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		HotelName:    getenv("HOTEL_NAME", "Grand Hotel"),
		MongoURI:     os.Getenv("MONGO_URI"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RabbitURL:    os.Getenv("RABBIT_URL"),
		AuditLogPath: getenv("AUDIT_LOG_PATH", "audit.log"),
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
