package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the services read from the environment.
type Config struct {
	Port string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBName      string
	DBUser      string
	DBPassword  string

	DBMaxOpenConns int
	DBMaxIdleConns int
	DBConnMaxIdle  time.Duration

	AWSRegion string
	S3Bucket  string
}

// Load reads configuration from environment variables, falling back to the
// defaults below.
func Load() *Config {
	viper.SetDefault("PORT", "3002")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "products_db")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 20)
	viper.SetDefault("DB_CONN_MAX_IDLE_SECONDS", 30)
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("S3_BUCKET", "")
	viper.AutomaticEnv()

	return &Config{
		Port:           viper.GetString("PORT"),
		DatabaseURL:    viper.GetString("DATABASE_URL"),
		DBHost:         viper.GetString("DB_HOST"),
		DBPort:         viper.GetString("DB_PORT"),
		DBName:         viper.GetString("DB_NAME"),
		DBUser:         viper.GetString("DB_USER"),
		DBPassword:     viper.GetString("DB_PASSWORD"),
		DBMaxOpenConns: viper.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns: viper.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxIdle:  time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_SECONDS")) * time.Second,
		AWSRegion:      viper.GetString("AWS_REGION"),
		S3Bucket:       viper.GetString("S3_BUCKET"),
	}
}
