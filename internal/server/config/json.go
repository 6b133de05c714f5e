package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/chapterhub/internal/flagx"
	"github.com/dmitrijs2005/chapterhub/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations use
// timex.Duration, so both "30s" and integer nanoseconds are accepted.
// Pointers distinguish an absent key from an explicit zero value.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             string         `json:"endpoint_addr_http"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	SessionPassword              string         `json:"session_password"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	PresignExpiry                timex.Duration `json:"presign_expiry"`
	OpenAIAPIKey                 string         `json:"openai_api_key"`
	OpenAIBaseURL                string         `json:"openai_base_url"`
	OpenAIModel                  string         `json:"openai_model"`
	LLMTimeout                   timex.Duration `json:"llm_timeout"`
	PDFTimeout                   timex.Duration `json:"pdf_timeout"`
	GPAMode                      string         `json:"gpa_mode"`
	CORSAllowedOrigins           []string       `json:"cors_allowed_origins"`
	DevSessions                  *bool          `json:"dev_sessions"`
	LogLevel                     string         `json:"log_level"`
}

// parseJson overlays values from the JSON file named by -c or -config onto
// config. Keys missing from the file leave the current value untouched.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	setString(&config.SessionPassword, c.SessionPassword)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setDuration(&config.PresignExpiry, c.PresignExpiry)
	setString(&config.OpenAIAPIKey, c.OpenAIAPIKey)
	setString(&config.OpenAIBaseURL, c.OpenAIBaseURL)
	setString(&config.OpenAIModel, c.OpenAIModel)
	setDuration(&config.LLMTimeout, c.LLMTimeout)
	setDuration(&config.PDFTimeout, c.PDFTimeout)
	setString(&config.GPAMode, c.GPAMode)
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	if c.DevSessions != nil {
		config.DevSessions = *c.DevSessions
	}
	setString(&config.LogLevel, c.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
