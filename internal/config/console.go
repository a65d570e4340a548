package config

type ConsoleConfig struct {
	OperatorID string `yaml:"operator_id" validate:"required,operator_id"`
	LogOutput  string `yaml:"log_output" validate:"required"`
	AltScreen  bool   `yaml:"alt_screen"`
	Mouse      bool   `yaml:"mouse"`
}

func loadConsoleConfig() *ConsoleConfig {
	return &ConsoleConfig{
		OperatorID: getEnv("ADMIN_OPERATOR_ID", "admin1"),
		LogOutput:  getEnv("CONSOLE_LOG_OUTPUT", "livelink-console.log"),
		AltScreen:  getEnvAsBool("CONSOLE_ALT_SCREEN", true),
		Mouse:      getEnvAsBool("CONSOLE_MOUSE", true),
	}
}
