package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Version  string `envconfig:"APP_VERSION"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		// AllowedOrigins feeds both the CORS layer and the origin
		// allowlist guarding every /api route.
		AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`
		RateLimiter    struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		// LoginKeys is the encrypted allowlist checked by the public
		// login endpoint. Each entry is a ciphertext produced by the
		// same AES transform used for reservation passwords.
		LoginKeys []string `envconfig:"LOGIN_KEYS"`
	} `envconfig:"APP"`

	Crypto struct {
		// AESKey and AESIV are base64-encoded. The reservation
		// password transform is deterministic AES-CBC with this
		// static key/IV pair; see shared/password.
		AESKey string `envconfig:"AES_KEY"`
		AESIV  string `envconfig:"AES_IV"`
		// Scheme selects the password transform: "aes" (default,
		// reversible, matches the legacy system) or "bcrypt".
		Scheme string `envconfig:"SCHEME"`
	} `envconfig:"CRYPTO"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret          string `envconfig:"ACCESS_SECRET"`
		RefreshSecret         string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin       int    `envconfig:"ACCESS_EXPIRE_MIN"       default:"5"`
		RefreshExpireMin      int    `envconfig:"REFRESH_EXPIRE_MIN"      default:"525600"`
		RenewThresholdHours   int    `envconfig:"RENEW_THRESHOLD_HOURS"   default:"24"`
		RefreshCookieName     string `envconfig:"REFRESH_COOKIE_NAME"     default:"admin_refresh_token"`
		RefreshCookieSecure   bool   `envconfig:"REFRESH_COOKIE_SECURE"`
		RefreshCookieSameSite string `envconfig:"REFRESH_COOKIE_SAMESITE" default:"Lax"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	FCM struct {
		Enable          bool   `envconfig:"ENABLE"`
		CredentialsFile string `envconfig:"CREDENTIALS_FILE"`
		ProjectID       string `envconfig:"PROJECT_ID"`
	} `envconfig:"FCM"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
