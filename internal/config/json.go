package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		SSOSecret          string   `json:"sso_secret"`
		SSOLoginURL        string   `json:"sso_login_url"`
		SSOCallbackURL     string   `json:"sso_callback_url"`
		LoginRedirectURL   string   `json:"login_redirect_url"`
		TokenSignKey       string   `json:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer"`
		TokenDuration      Duration `json:"token_duration"`
		HookSecret         string   `json:"hook_secret"`
		InactiveUserPolicy string   `json:"inactive_user_policy"`
		DeletePolicy       string   `json:"delete_policy"`
		LogLevel           string   `json:"log_level"`
		Version            string   `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		ForumURL           string   `json:"forum_url"`
		APIKey             string   `json:"api_key"`
		APIUsername        string   `json:"api_username"`
		RequestTimeout     Duration `json:"request_timeout"`
		InsecureSkipVerify bool     `json:"insecure_skip_verify"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Session struct {
		RedisURL     string   `json:"redis_url"`
		TTL          Duration `json:"ttl"`
		CookieName   string   `json:"cookie_name"`
		CookieSecure bool     `json:"cookie_secure"`
	} `json:"session,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
			SSOSecret:          jsonCfg.App.SSOSecret,
			SSOLoginURL:        jsonCfg.App.SSOLoginURL,
			SSOCallbackURL:     jsonCfg.App.SSOCallbackURL,
			LoginRedirectURL:   jsonCfg.App.LoginRedirectURL,
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			TokenDuration:      time.Duration(jsonCfg.App.TokenDuration),
			HookSecret:         jsonCfg.App.HookSecret,
			InactiveUserPolicy: jsonCfg.App.InactiveUserPolicy,
			DeletePolicy:       jsonCfg.App.DeletePolicy,
			LogLevel:           jsonCfg.App.LogLevel,
			Version:            jsonCfg.App.Version,
		},
		Adapter: Adapter{
			ForumURL:           jsonCfg.Adapter.ForumURL,
			APIKey:             jsonCfg.Adapter.APIKey,
			APIUsername:        jsonCfg.Adapter.APIUsername,
			RequestTimeout:     time.Duration(jsonCfg.Adapter.RequestTimeout),
			InsecureSkipVerify: jsonCfg.Adapter.InsecureSkipVerify,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Session: Session{
			RedisURL:     jsonCfg.Session.RedisURL,
			TTL:          time.Duration(jsonCfg.Session.TTL),
			CookieName:   jsonCfg.Session.CookieName,
			CookieSecure: jsonCfg.Session.CookieSecure,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
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
