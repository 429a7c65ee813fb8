package config

import (
	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                int     `env:"PORT" envDefault:"8080"`
	Dsn                 string  `env:"DSN,required"`
	JwtSecret           string  `env:"JWT_SECRET,required"`
	JwtExpires          string  `env:"JWT_EXPIRES" envDefault:"15m"`
	RefreshSecret       string  `env:"REFRESH_SECRET,required"`
	RefreshExpiry       string  `env:"REFRESH_EXPIRY" envDefault:"720h"`
	SMTPHost            string  `env:"SMTP_HOST"`
	SMTPPort            int     `env:"SMTP_PORT"`
	SMTPUser            string  `env:"SMTP_USER"`
	SMTPPassword        string  `env:"SMTP_PASSWORD"`
	SMTPFrom            string  `env:"SMTP_FROM"`
	CloudinaryCloudName string  `env:"CLOUDINARY_CLOUD_NAME,required"`
	CloudinaryAPIKey    string  `env:"CLOUDINARY_API_KEY,required"`
	CloudinaryAPISecret string  `env:"CLOUDINARY_API_SECRET,required"`
	GoogleClientID      string  `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret  string  `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL   string  `env:"GOOGLE_REDIRECT_URL"`
	BookingFeeRate      float64 `env:"BOOKING_FEE_RATE" envDefault:"0.18"`
}

// New loads configuration from the environment. Missing required values
// (database, storage credentials, token secrets) are a fatal startup error,
// not something to limp along without.
func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Printf("[Env]: unable to load .env file %v", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		log.Fatalf("[Env]: failed to parse environment variables: %v", parseErr)
	}

	return &cfg
}
