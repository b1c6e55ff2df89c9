package config

import (
	"time"

	"github.com/spf13/viper"
)

type AppConf struct {
	Env            string `mapstructure:"env"`
	Port           int    `mapstructure:"port"`
	ShutdownSecond int    `mapstructure:"shutdown_seconds"`
	ReadSeconds    int    `mapstructure:"read_timeout_seconds"`
	WriteSeconds   int    `mapstructure:"write_timeout_seconds"`
}

type MongoConf struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// StorageConf selects the asset store backend. Driver "local" keeps bytes
// under Dir and serves them at BaseURL; driver "s3" uses the AWS section.
type StorageConf struct {
	Driver    string `mapstructure:"driver"`
	Dir       string `mapstructure:"dir"`
	BaseURL   string `mapstructure:"base_url"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type AWSConf struct {
	Region string `mapstructure:"region"`
	Bucket string `mapstructure:"bucket"`
}

type RedisConf struct {
	Addr       string `mapstructure:"addr"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	RateLimit  int    `mapstructure:"rate_limit"`
	RateWindow int    `mapstructure:"rate_window_seconds"`
}

type Config struct {
	App     AppConf     `mapstructure:"app"`
	Mongo   MongoConf   `mapstructure:"mongodb"`
	Storage StorageConf `mapstructure:"storage"`
	AWS     AWSConf     `mapstructure:"aws"`
	Redis   RedisConf   `mapstructure:"redis"`
	Log     struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	// derived
	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	RateWindow      time.Duration
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.App.Port == 0 {
		cfg.App.Port = 5000
	}
	if cfg.App.ShutdownSecond == 0 {
		cfg.App.ShutdownSecond = 15
	}
	if cfg.App.ReadSeconds == 0 {
		cfg.App.ReadSeconds = 30
	}
	if cfg.App.WriteSeconds == 0 {
		cfg.App.WriteSeconds = 30
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "local"
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = "uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/uploads"
	}
	if cfg.Storage.KeyPrefix == "" {
		cfg.Storage.KeyPrefix = "midias"
	}
	if cfg.Redis.RateLimit == 0 {
		cfg.Redis.RateLimit = 100
	}
	if cfg.Redis.RateWindow == 0 {
		cfg.Redis.RateWindow = 60
	}
	cfg.ShutdownTimeout = time.Duration(cfg.App.ShutdownSecond) * time.Second
	cfg.ReadTimeout = time.Duration(cfg.App.ReadSeconds) * time.Second
	cfg.WriteTimeout = time.Duration(cfg.App.WriteSeconds) * time.Second
	cfg.RateWindow = time.Duration(cfg.Redis.RateWindow) * time.Second
	return &cfg, nil
}
