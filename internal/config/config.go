package config

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Resources ResourceConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type ResourceConfig struct {
	PublicDir         string
	BaseURL           string // fetch resources over HTTP when set
	DietaryImagesPath string
	AuthCodesPath     string
	Timeout           time.Duration
	DietaryCacheTTL   time.Duration // zero disables caching
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// IsDevelopment reports whether the server runs outside production
func (c *Config) IsDevelopment() bool {
	return c.Server.Env != "production"
}

// RedisEnabled reports whether a Redis host is configured for rate limiting
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// Flags declares the command line overrides understood by Load
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("env-file", ".env", "path to the env config file")
	fs.String("port", "", "HTTP listen port (overrides SERVER_PORT)")
	fs.String("public-dir", "", "directory served as the site root (overrides PUBLIC_DIR)")
	return fs
}

// Load reads configuration from flags, .env.local, the env file and the
// process environment. Flags win over environment values.
func Load(args []string) (*Config, error) {
	fs := Flags("dnalab")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// .env.local is optional and only fills variables not already set
	_ = godotenv.Load(".env.local")

	v := viper.New()
	envFile, _ := fs.GetString("env-file")
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file %s: %v", filepath.Clean(envFile), err)
	}

	if port, _ := fs.GetString("port"); port != "" {
		v.Set("SERVER_PORT", port)
	}
	if dir, _ := fs.GetString("public-dir"); dir != "" {
		v.Set("PUBLIC_DIR", dir)
	}

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("PUBLIC_DIR", "public")
	v.SetDefault("RESOURCE_BASE_URL", "")
	v.SetDefault("DIETARY_IMAGES_PATH", "/dietary-images.json")
	v.SetDefault("AUTH_CODES_PATH", "/auth-codes.json")
	v.SetDefault("RESOURCE_TIMEOUT_SECONDS", 10)
	v.SetDefault("DIETARY_CACHE_TTL_SECONDS", 0)
	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT_REQUESTS", 20)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:     v.GetString("SERVER_PORT"),
			Env:      v.GetString("SERVER_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Resources: ResourceConfig{
			PublicDir:         v.GetString("PUBLIC_DIR"),
			BaseURL:           v.GetString("RESOURCE_BASE_URL"),
			DietaryImagesPath: v.GetString("DIETARY_IMAGES_PATH"),
			AuthCodesPath:     v.GetString("AUTH_CODES_PATH"),
			Timeout:           time.Duration(v.GetInt("RESOURCE_TIMEOUT_SECONDS")) * time.Second,
			DietaryCacheTTL:   time.Duration(v.GetInt("DIETARY_CACHE_TTL_SECONDS")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   time.Duration(v.GetInt("RATE_LIMIT_WINDOW_SECONDS")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
