package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	StoreSQLite = "sqlite"
	StoreMongo  = "mongo"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	JWTSecret  string        `env:"JWT_SECRET,  required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=24h"`
	BcryptCost int           `env:"BCRYPT_COST, default=12"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	LogPretty  bool          `env:"LOG_PRETTY,  default=false"`

	Store      StoreConfig
	Mongo      MongoConfig
	Redis      RedisConfig
	Generation GenerationConfig
	JobSearch  JobSearchConfig
}

type StoreConfig struct {
	Driver     string `env:"STORE_DRIVER, default=sqlite"`
	SQLitePath string `env:"SQLITE_PATH,  default=users.db"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=resume_assistant"`
}

// RedisConfig is optional: with no address the job cache stays in memory.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type GenerationConfig struct {
	Provider      string        `env:"LLM_PROVIDER,       default=ollama"`
	OllamaURL     string        `env:"OLLAMA_URL,         default=http://localhost:11434"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL"`
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	Timeout       time.Duration `env:"GENERATION_TIMEOUT, default=300s"`
	DefaultModel  string        `env:"DEFAULT_MODEL,      default=llama3"`
}

type JobSearchConfig struct {
	APIKey    string        `env:"RAPIDAPI_KEY"`
	Host      string        `env:"RAPIDAPI_HOST,      default=jsearch.p.rapidapi.com"`
	Country   string        `env:"JOB_SEARCH_COUNTRY, default=in"`
	CacheTTL  time.Duration `env:"JOB_CACHE_TTL,      default=1h"`
	CacheSize int           `env:"JOB_CACHE_SIZE,     default=50"`
}

// Load reads an optional .env file, then configuration from environment
// variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom resolves the configuration through l and checks cross-field rules.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreSQLite, StoreMongo:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.BcryptCost)
	}
	if c.JobSearch.CacheSize <= 0 {
		return fmt.Errorf("JOB_CACHE_SIZE must be positive, got %d", c.JobSearch.CacheSize)
	}
	return nil
}
