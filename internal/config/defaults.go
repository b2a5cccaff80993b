package config

import "time"

// defaultConfig returns the built-in fallback values. These mirror the
// hosted services the application targets; any of them can be overridden
// through the environment, flags, or a JSON file.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "food-bridge",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			DB: DB{
				Port:    5432,
				SSLMode: "require",
			},
		},
		Server: Server{
			Port:            5000,
			ShutdownTimeout: 30 * time.Second,
			PublicDir:       "public",
		},
		Payment: Payment{
			BaseURL:  "https://payment.intasend.com",
			Currency: "KES",
		},
		Oracle: Oracle{
			BaseURL:       "https://api.openai.com",
			Model:         "gpt-4o-mini",
			MaxConcurrent: 1,
		},
	}
}
