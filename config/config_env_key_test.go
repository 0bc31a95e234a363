package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId":      "",
			"pushAudience": "",
		},
		"email": map[string]any{
			"appBaseUrl": "",
			"batchSize":  100,
		},
		"documents": map[string]any{
			"maxPdfBytes": 0,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_PUSHAUDIENCE", want: "pubsub.pushAudience"},
		{envKey: "EMAIL_APPBASEURL", want: "email.appBaseUrl"},
		{envKey: "DOCUMENTS_MAXPDFBYTES", want: "documents.maxPdfBytes"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
env:
  serviceName: foodbridge
http:
  port: 8080
  timeouts:
    readTimeout: 5s
email:
  host: smtp.local
  batchSize: 50
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unit.yaml"), yamlBody, 0o600))

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("EMAIL_BATCHSIZE", "25")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(cwd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("unit", rel)
	require.NoError(t, err)

	assert.Equal(t, "foodbridge", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "5s", cfg.HTTP.Timeouts.ReadTimeout.String())
	require.NotNil(t, cfg.Email)
	assert.Equal(t, "smtp.local", cfg.Email.Host)
	assert.Equal(t, 25, cfg.Email.BatchSize)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Email: &EmailConfig{}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Documents)
	assert.EqualValues(t, 5<<20, cfg.Documents.MaxImageBytes)
	assert.EqualValues(t, 10<<20, cfg.Documents.MaxPDFBytes)
	assert.Equal(t, defaultEmailBatchSize, cfg.Email.BatchSize)
}
