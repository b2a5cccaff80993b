package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Host     string `json:"host"`
			Port     int    `json:"port"`
			User     string `json:"user"`
			Password string `json:"password"`
			Name     string `json:"name"`
			SSLMode  string `json:"sslmode"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Port            int      `json:"port"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		PublicDir       string   `json:"public_dir"`
	} `json:"server,omitempty"`

	Payment struct {
		BaseURL    string `json:"base_url"`
		PublicKey  string `json:"public_key"`
		PrivateKey string `json:"private_key"`
		Currency   string `json:"currency"`
	} `json:"payment,omitempty"`

	Oracle struct {
		BaseURL       string `json:"base_url"`
		APIKey        string `json:"api_key"`
		Model         string `json:"model"`
		MaxConcurrent int    `json:"max_concurrent"`
	} `json:"oracle,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				Host:     jsonCfg.Storage.DB.Host,
				Port:     jsonCfg.Storage.DB.Port,
				User:     jsonCfg.Storage.DB.User,
				Password: jsonCfg.Storage.DB.Password,
				Name:     jsonCfg.Storage.DB.Name,
				SSLMode:  jsonCfg.Storage.DB.SSLMode,
			},
		},
		Server: Server{
			Port:            jsonCfg.Server.Port,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			PublicDir:       jsonCfg.Server.PublicDir,
		},
		Payment: Payment{
			BaseURL:    jsonCfg.Payment.BaseURL,
			PublicKey:  jsonCfg.Payment.PublicKey,
			PrivateKey: jsonCfg.Payment.PrivateKey,
			Currency:   jsonCfg.Payment.Currency,
		},
		Oracle: Oracle{
			BaseURL:       jsonCfg.Oracle.BaseURL,
			APIKey:        jsonCfg.Oracle.APIKey,
			Model:         jsonCfg.Oracle.Model,
			MaxConcurrent: jsonCfg.Oracle.MaxConcurrent,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
