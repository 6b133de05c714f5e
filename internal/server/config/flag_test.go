package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-w", ":8081", "-d", "memory", "-s", "secret",
			"-t", "1", "-r", "3", "-k", "sealpw", "-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
			"-presign-expiry", "5m", "-openai-key", "sk-test", "-openai-base-url", "http://llm",
			"-openai-model", "gpt-test", "-llm-timeout", "10s", "-pdf-timeout", "5s",
			"-gpa-mode", "live", "-cors-origins", "http://a.test, http://b.test", "-dev-sessions", "-log-level", "debug",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddrGRPC:             "127.0.0.1:9090",
				EndpointAddrHTTP:             ":8081",
				DatabaseDSN:                  "memory",
				SecretKey:                    "secret",
				AccessTokenValidityDuration:  1 * time.Minute,
				RefreshTokenValidityDuration: 3 * time.Minute,
				SessionPassword:              "sealpw",
				S3RootUser:                   "user",
				S3RootPassword:               "password",
				S3Bucket:                     "bucket",
				S3Region:                     "us-west-1",
				S3BaseEndpoint:               "http://endpoint",
				PresignExpiry:                5 * time.Minute,
				OpenAIAPIKey:                 "sk-test",
				OpenAIBaseURL:                "http://llm",
				OpenAIModel:                  "gpt-test",
				LLMTimeout:                   10 * time.Second,
				PDFTimeout:                   5 * time.Second,
				GPAMode:                      GPAModeLive,
				CORSAllowedOrigins:           []string{"http://a.test", "http://b.test"},
				DevSessions:                  true,
				LogLevel:                     "debug",
			}},
		{name: "bad duration panics", args: []string{"cmd", "-llm-timeout", "soon"}, expectPanic: true},
		{name: "unknown flags ignored", args: []string{"cmd", "-zzz", "1", "-a", ":1"}, expected: &Config{
			EndpointAddrGRPC: ":1",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
