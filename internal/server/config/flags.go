package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/chapterhub/internal/flagx"
)

var knownFlags = []string{
	"-a", "-w", "-d", "-s", "-t", "-r", "-k", "-u", "-p", "-b", "-g", "-e",
	"-presign-expiry", "-openai-key", "-openai-base-url", "-openai-model",
	"-llm-timeout", "-pdf-timeout", "-gpa-mode", "-cors-origins",
	"-dev-sessions", "-log-level",
}

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-w string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN, or "memory"
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-k string   session sealing password
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-presign-expiry duration
//	-openai-key string
//	-openai-base-url string
//	-openai-model string
//	-llm-timeout duration
//	-pdf-timeout duration
//	-gpa-mode string   "cached" or "live"
//	-cors-origins string   comma separated
//	-dev-sessions bool
//	-log-level string
//
// Token validity flags are integers in minutes, the other duration flags use
// time.ParseDuration syntax.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh_token_validity_duration (in minutes)")

	fs.StringVar(&config.SessionPassword, "k", config.SessionPassword, "session sealing password")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.DurationVar(&config.PresignExpiry, "presign-expiry", config.PresignExpiry, "presigned URL lifetime")

	fs.StringVar(&config.OpenAIAPIKey, "openai-key", config.OpenAIAPIKey, "OpenAI API key")
	fs.StringVar(&config.OpenAIBaseURL, "openai-base-url", config.OpenAIBaseURL, "OpenAI compatible base URL")
	fs.StringVar(&config.OpenAIModel, "openai-model", config.OpenAIModel, "completion model")
	fs.DurationVar(&config.LLMTimeout, "llm-timeout", config.LLMTimeout, "completion call timeout")
	fs.DurationVar(&config.PDFTimeout, "pdf-timeout", config.PDFTimeout, "pdf parsing timeout")

	fs.StringVar(&config.GPAMode, "gpa-mode", config.GPAMode, "gpa mode: cached or live")
	origins := fs.String("cors-origins", strings.Join(config.CORSAllowedOrigins, ","), "allowed CORS origins, comma separated")
	fs.BoolVar(&config.DevSessions, "dev-sessions", config.DevSessions, "expose POST /auth/session")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
	config.CORSAllowedOrigins = splitList(*origins)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
