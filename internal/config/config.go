package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret string // JWT署名シークレット

	LogLevel  string // debug/info/warn/error
	LogPretty bool   // trueでテキスト出力（開発用）
}

// Loadは環境変数から設定を読む
func Load() (Config, error) {
	cfg := Config{
		Port:      os.Getenv("PORT"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		LogLevel:  os.Getenv("LOG_LEVEL"),
	}

	if v := os.Getenv("LOG_PRETTY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("LOG_PRETTY must be bool: %w", err)
		}
		cfg.LogPretty = b
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
