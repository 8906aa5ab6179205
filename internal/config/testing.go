package config

import "go.uber.org/zap"

// NewTestConfig returns a config with placeholder credentials for tests.
func NewTestConfig() *Config {
	return &Config{
		PublicKey:     "aabbccdd",
		BotToken:      "test-token",
		ApplicationID: "test-app-id",
		Port:          "8080",
		BotEndpoint:   "/discord",
	}
}

func NewTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}
