package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting of the server. Values come from the
// environment (optionally seeded from a .env file by godotenv).
type Config struct {
	Port      string
	ClientURL string

	StoreDriver      string
	MongoURI         string
	MongoDatabase    string
	PropertiesColl   string
	NewsColl         string
	UsersColl        string
	MongoConnTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionSecret     string
	SessionCookieName string
	SessionTTL        time.Duration
	CookieSecure      bool

	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string

	SendGridAPIKey string
	MailFrom       string
	MailTo         string

	GeocodeBaseURL   string
	GeocodeUserAgent string
	GeocodeCacheTTL  time.Duration

	OutboundTimeout time.Duration
	OutboundRetries uint64

	LogLevel string
}

var defaults = map[string]any{
	"PORT":                          "8000",
	"CLIENT_URL":                    "http://localhost:3000",
	"STORE_DRIVER":                  "mongo",
	"MONGO_URI":                     "mongodb://localhost:27017",
	"MONGO_DATABASE":                "realestate",
	"MONGODB_COLLECTION_PROPERTIES": "properties",
	"MONGODB_COLLECTION_NEWS":       "news",
	"MONGODB_COLLECTION_USER":       "users",
	"MONGO_CONNECT_TIMEOUT":         "10s",
	"REDIS_ADDR":                    "localhost:6379",
	"REDIS_PASSWORD":                "",
	"REDIS_DB":                      0,
	"SESSION_SECRET":                "",
	"SESSION_COOKIE_NAME":           "connect.sid",
	"SESSION_TTL":                   "24h",
	"COOKIE_SECURE":                 false,
	"GOOGLE_CLIENT_ID":              "",
	"GOOGLE_CLIENT_SECRET":          "",
	"GOOGLE_CALLBACK_URL":           "http://localhost:8000/auth/google/callback",
	"SENDGRID_API_KEY":              "",
	"MAIL_FROM":                     "",
	"MAIL_TO":                       "",
	"GEOCODE_BASE_URL":              "https://nominatim.openstreetmap.org",
	"GEOCODE_USER_AGENT":            "real-deal-server/1.0",
	"GEOCODE_CACHE_TTL":             "24h",
	"OUTBOUND_TIMEOUT":              "10s",
	"OUTBOUND_RETRIES":              3,
	"LOG_LEVEL":                     "info",
}

// Load reads the configuration from the environment through viper.
func Load() *Config {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	return &Config{
		Port:      v.GetString("PORT"),
		ClientURL: strings.TrimRight(v.GetString("CLIENT_URL"), "/"),

		StoreDriver:      strings.ToLower(v.GetString("STORE_DRIVER")),
		MongoURI:         v.GetString("MONGO_URI"),
		MongoDatabase:    v.GetString("MONGO_DATABASE"),
		PropertiesColl:   v.GetString("MONGODB_COLLECTION_PROPERTIES"),
		NewsColl:         v.GetString("MONGODB_COLLECTION_NEWS"),
		UsersColl:        v.GetString("MONGODB_COLLECTION_USER"),
		MongoConnTimeout: v.GetDuration("MONGO_CONNECT_TIMEOUT"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		SessionSecret:     v.GetString("SESSION_SECRET"),
		SessionCookieName: v.GetString("SESSION_COOKIE_NAME"),
		SessionTTL:        v.GetDuration("SESSION_TTL"),
		CookieSecure:      v.GetBool("COOKIE_SECURE"),

		GoogleClientID:     v.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleCallbackURL:  v.GetString("GOOGLE_CALLBACK_URL"),

		SendGridAPIKey: v.GetString("SENDGRID_API_KEY"),
		MailFrom:       v.GetString("MAIL_FROM"),
		MailTo:         v.GetString("MAIL_TO"),

		GeocodeBaseURL:   strings.TrimRight(v.GetString("GEOCODE_BASE_URL"), "/"),
		GeocodeUserAgent: v.GetString("GEOCODE_USER_AGENT"),
		GeocodeCacheTTL:  v.GetDuration("GEOCODE_CACHE_TTL"),

		OutboundTimeout: v.GetDuration("OUTBOUND_TIMEOUT"),
		OutboundRetries: v.GetUint64("OUTBOUND_RETRIES"),

		LogLevel: v.GetString("LOG_LEVEL"),
	}
}
