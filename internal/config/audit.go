package config

// AuditConfig selects the sinks admin actions are reported to.
type AuditConfig struct {
	Log       bool   `yaml:"log"`
	WebSocket bool   `yaml:"websocket"`
	Mongo     bool   `yaml:"mongo"`
	Redis     bool   `yaml:"redis"`
	Channel   string `yaml:"channel" validate:"required_if=Redis true"`
	Room      string `yaml:"room" validate:"required_if=WebSocket true"`
}

func loadAuditConfig() *AuditConfig {
	return &AuditConfig{
		Log:       getEnvAsBool("AUDIT_LOG", true),
		WebSocket: getEnvAsBool("AUDIT_WEBSOCKET", true),
		Mongo:     getEnvAsBool("AUDIT_MONGO", false),
		Redis:     getEnvAsBool("AUDIT_REDIS", false),
		Channel:   getEnv("AUDIT_REDIS_CHANNEL", "livelink:audit"),
		Room:      getEnv("AUDIT_ROOM", "audit"),
	}
}
