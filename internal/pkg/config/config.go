package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	QueueCapacity int    `mapstructure:"QUEUE_CAPACITY"`
	NumWorkers    int    `mapstructure:"NUM_WORKERS"`

	// Campaign report sink
	ElasticsearchURL string `mapstructure:"ELASTICSEARCH_URL"`
	IndexName        string `mapstructure:"INDEX_NAME"`
	BulkThreshold    int    `mapstructure:"BULK_THRESHOLD"`
	FlushInterval    int    `mapstructure:"FLUSH_INTERVAL"`
	MaxRetries       int    `mapstructure:"MAX_RETRIES"`

	// Redis config (batch dedup)
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Detection thresholds
	SpamScoreThreshold int     `mapstructure:"SPAM_SCORE_THRESHOLD"`
	PassOneThreshold   float64 `mapstructure:"PASS_ONE_THRESHOLD"`
	MergeThreshold     float64 `mapstructure:"MERGE_THRESHOLD"`
	MaxFuzzyDistance   int     `mapstructure:"MAX_FUZZY_DISTANCE"`

	LogLevel string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	// Set defaults for configuration values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("QUEUE_CAPACITY", 1000)
	viper.SetDefault("NUM_WORKERS", 4)
	viper.SetDefault("ELASTICSEARCH_URL", "http://localhost:9200/_bulk")
	viper.SetDefault("INDEX_NAME", "spam_campaign_reports")
	viper.SetDefault("BULK_THRESHOLD", 3)
	viper.SetDefault("FLUSH_INTERVAL", 30)
	viper.SetDefault("MAX_RETRIES", 3)

	// Redis defaults
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	// Detection defaults mirror detection.DefaultConfig
	viper.SetDefault("SPAM_SCORE_THRESHOLD", 50)
	viper.SetDefault("PASS_ONE_THRESHOLD", 0.4)
	viper.SetDefault("MERGE_THRESHOLD", 0.3)
	viper.SetDefault("MAX_FUZZY_DISTANCE", 2)

	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}
