package config

import (
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	DBDSN       string
	LogFile     string
	LogLevel    string
	AdminAPIKey string
	SeedImages  bool

	// Optional S3-compatible bucket holding the image catalog.
	ImageBucket    string
	ImagePrefix    string
	ImageEndpoint  string
	ImageRegion    string
	ImageAccessKey string
	ImageSecretKey string
}

func Load() Config {
	// .env is optional; real environment wins over it.
	if err := godotenv.Load(); err != nil {
		logrus.Debug("[config] no .env file, using environment only")
	}

	cfg := Config{
		Port:           getenv("PORT", "8000"),
		DBDSN:          getenv("DB_DSN", "marketplace.db"), // sqlite file in project root
		LogFile:        os.Getenv("LOG_FILE"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		AdminAPIKey:    os.Getenv("ADMIN_API_KEY"),
		SeedImages:     getbool("SEED_IMAGES", true),
		ImageBucket:    os.Getenv("IMAGE_BUCKET"),
		ImagePrefix:    getenv("IMAGE_PREFIX", "images"),
		ImageEndpoint:  os.Getenv("IMAGE_ENDPOINT"),
		ImageRegion:    getenv("AWS_REGION", "auto"),
		ImageAccessKey: os.Getenv("IMAGE_ACCESS_KEY_ID"),
		ImageSecretKey: os.Getenv("IMAGE_ACCESS_KEY_SECRET"),
	}
	logrus.WithFields(logrus.Fields{
		"port":         cfg.Port,
		"db_dsn":       redactDSN(cfg.DBDSN),
		"log_file":     cfg.LogFile,
		"admin_key":    cfg.AdminAPIKey != "",
		"seed_images":  cfg.SeedImages,
		"image_bucket": cfg.ImageBucket,
	}).Info("[config] loaded")
	return cfg
}

// redactDSN keeps scheme, host and path; credentials and query options are dropped.
func redactDSN(dsn string) string {
	if !strings.Contains(dsn, "://") {
		path, _, _ := strings.Cut(dsn, "?")
		return path
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return "[unparseable dsn]"
	}
	return u.Scheme + "://" + u.Host + u.Path
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}
