package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Frequency FrequencyConfig
	Log       LogConfig
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Address         string
	Mode            string
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// FrequencyConfig 控制字元統計的參數
type FrequencyConfig struct {
	MaxLength int `mapstructure:"max_length"`
}

type LogConfig struct {
	Level  string
	Format string
}

// RateLimitConfig 設定每個客戶端的請求速率，RPS 不大於 0 時停用
type RateLimitConfig struct {
	RPS     float64
	Burst   int
	IdleTTL time.Duration `mapstructure:"idle_ttl"`
}

// Load 從預設位置讀取配置
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom 讀取配置，path 為空時在 ./pkg/config 與當前目錄中尋找 config.yaml。
// 找不到配置文件時使用預設值，環境變數（CHARFREQ_ 前綴）優先於文件。
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./pkg/config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CHARFREQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("frequency.max_length", 7000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("rate_limit.rps", 50)
	v.SetDefault("rate_limit.burst", 100)
	v.SetDefault("rate_limit.idle_ttl", 10*time.Minute)
}
