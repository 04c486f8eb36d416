package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string `mapstructure:"HTTP_PORT"`

	DBDriver   string `mapstructure:"DB_DRIVER"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSslMode  string `mapstructure:"DB_SSLMODE"`
	SQLitePath string `mapstructure:"SQLITE_PATH"`

	JWTSecret  string        `mapstructure:"JWT_SECRET"`
	JWTTTL     time.Duration `mapstructure:"JWT_TTL"`
	BcryptCost int           `mapstructure:"BCRYPT_COST"`

	BusDriver string `mapstructure:"BUS_DRIVER"`
	RedisAddr string `mapstructure:"REDIS_ADDR"`

	KafkaBrokers          []string `mapstructure:"KAFKA_BROKERS"`
	KafkaOrderEventsTopic string   `mapstructure:"KAFKA_ORDER_EVENTS_TOPIC"`

	S3Bucket        string `mapstructure:"S3_BUCKET"`
	S3Region        string `mapstructure:"S3_REGION"`
	S3PublicBaseURL string `mapstructure:"S3_PUBLIC_BASE_URL"`

	PublicBaseURL      string        `mapstructure:"PUBLIC_BASE_URL"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
	SSEHeartbeat       time.Duration `mapstructure:"SSE_HEARTBEAT"`

	PromotionExpirySchedule string `mapstructure:"PROMOTION_EXPIRY_SCHEDULE"`
}

var configDefaults = map[string]any{
	"HTTP_PORT":                 "8080",
	"DB_DRIVER":                 "postgres",
	"DB_HOST":                   "localhost",
	"DB_PORT":                   "5432",
	"DB_USER":                   "postgres",
	"DB_PASSWORD":               "",
	"DB_NAME":                   "eats",
	"DB_SSLMODE":                "disable",
	"SQLITE_PATH":               "eats.db",
	"JWT_SECRET":                "",
	"JWT_TTL":                   "24h",
	"BCRYPT_COST":               10,
	"BUS_DRIVER":                "memory",
	"REDIS_ADDR":                "localhost:6379",
	"KAFKA_BROKERS":             "",
	"KAFKA_ORDER_EVENTS_TOPIC":  "order-events",
	"S3_BUCKET":                 "",
	"S3_REGION":                 "us-east-1",
	"S3_PUBLIC_BASE_URL":        "",
	"PUBLIC_BASE_URL":           "http://localhost:8080",
	"CORS_ALLOWED_ORIGINS":      "*",
	"SSE_HEARTBEAT":             "15s",
	"PROMOTION_EXPIRY_SCHEDULE": "@hourly",
}

// NewViper returns a viper instance that reads the configuration keys from
// the environment, after loading envFile when it exists.
func NewViper(envFile string) (*viper.Viper, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range configDefaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v, nil
}

// LoadConfig decodes v into a Config and checks the values every command needs.
func LoadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	hooks := viper.DecoderConfigOption(func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := v.Unmarshal(&cfg, hooks); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.KafkaBrokers = compact(cfg.KafkaBrokers)
	cfg.CORSAllowedOrigins = compact(cfg.CORSAllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}
	switch c.BusDriver {
	case BusMemory, BusRedis, BusPostgres:
	default:
		errs = append(errs, fmt.Errorf("BUS_DRIVER %q is not one of memory, redis, postgres", c.BusDriver))
	}
	if c.BusDriver == BusPostgres && c.DBDriver != "postgres" {
		errs = append(errs, errors.New("BUS_DRIVER=postgres needs DB_DRIVER=postgres"))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	return errors.Join(errs...)
}

func compact(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
