package config

type WebSocketConfig struct {
	Path           string   `yaml:"path" validate:"startswith=/"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func loadWebSocketConfig() *WebSocketConfig {
	return &WebSocketConfig{
		Path:           getEnv("WEBSOCKET_PATH", "/ws/audit"),
		AllowedOrigins: getEnvAsSlice("WEBSOCKET_ALLOWED_ORIGINS", []string{"*"}),
	}
}
