package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Database  DatabaseConfig  `mapstructure:"database"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Knowledge KnowledgeConfig `mapstructure:"knowledge"`
	Search    SearchConfig    `mapstructure:"search"`
	Blob      BlobConfig      `mapstructure:"blob"`
	Turn      TurnConfig      `mapstructure:"turn"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

type DatabaseConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	DBName      string `mapstructure:"dbname"`
	SSLMode     string `mapstructure:"sslmode"`
	UseInMemory bool   `mapstructure:"use_in_memory"`
}

type OpenAIConfig struct {
	APIKey         string  `mapstructure:"api_key"`
	VisionModel    string  `mapstructure:"vision_model"`
	IntentModel    string  `mapstructure:"intent_model"`
	TranslateModel string  `mapstructure:"translate_model"`
	MaxTokens      int     `mapstructure:"max_tokens"`
	Temperature    float64 `mapstructure:"temperature"`
}

type CatalogConfig struct {
	// Size is the exclusive upper bound of the paintid range; candidates
	// are scanned in [1, Size).
	Size        int `mapstructure:"size"`
	Concurrency int `mapstructure:"concurrency"`
}

type KnowledgeConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
}

type SearchConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
}

type BlobConfig struct {
	Dir     string `mapstructure:"dir"`
	BaseURL string `mapstructure:"base_url"`
}

type TurnConfig struct {
	// CallTimeoutSeconds bounds every external call made during a turn.
	CallTimeoutSeconds int `mapstructure:"call_timeout_seconds"`
}

func parseDatabaseURL(dbURL string) (DatabaseConfig, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return DatabaseConfig{}, err
	}

	password, _ := u.User.Password()
	port := 5432 // default PostgreSQL port
	if u.Port() != "" {
		fmt.Sscanf(u.Port(), "%d", &port)
	}

	// Remove leading slash from path to get database name
	dbName := strings.TrimPrefix(u.Path, "/")

	return DatabaseConfig{
		Host:     u.Hostname(),
		Port:     port,
		User:     u.User.Username(),
		Password: password,
		DBName:   dbName,
		SSLMode:  "disable",
	}, nil
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.use_in_memory", false)
	v.SetDefault("openai.vision_model", "gpt-4o")
	v.SetDefault("openai.intent_model", "gpt-4o-mini")
	v.SetDefault("openai.translate_model", "gpt-4o-mini")
	v.SetDefault("openai.max_tokens", 300)
	v.SetDefault("openai.temperature", 0.0)
	v.SetDefault("catalog.size", 106)
	v.SetDefault("catalog.concurrency", 1)
	v.SetDefault("blob.dir", "uploads")
	v.SetDefault("blob.base_url", "http://localhost:8080/uploads")
	v.SetDefault("turn.call_timeout_seconds", 15)

	// Enable environment variable support
	v.AutomaticEnv()

	// Read the config file
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Check for DATABASE_URL environment variable
	if dbURL := v.GetString("DATABASE_URL"); dbURL != "" {
		dbConfig, err := parseDatabaseURL(dbURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DATABASE_URL: %v", err)
		}
		config.Database = dbConfig
	}

	// Get other environment variables
	if token := v.GetString("TELEGRAM_TOKEN"); token != "" {
		config.Telegram.Token = token
	}

	if apiKey := v.GetString("OPENAI_API_KEY"); apiKey != "" {
		config.OpenAI.APIKey = apiKey
	}

	if key := v.GetString("KNOWLEDGE_API_KEY"); key != "" {
		config.Knowledge.APIKey = key
	}

	if key := v.GetString("SEARCH_API_KEY"); key != "" {
		config.Search.APIKey = key
	}

	return &config, nil
}
