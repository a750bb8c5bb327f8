package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"vizoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) Getenv {
	return func(key string) string { return values[key] }
}

func storefrontEnv() map[string]string {
	return map[string]string{
		"DB_HOST":    "localhost",
		"DB_PORT":    "5432",
		"DB_USER":    "shop",
		"DB_NAME":    "shop",
		"JWT_SECRET": "secret",
	}
}

func Test_LoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(env(storefrontEnv()))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "Alger", cfg.OriginRegion)
	assert.Equal(t, "disable", cfg.DB.SslMode)
	assert.Empty(t, cfg.GatewayEndpoints)
	assert.Empty(t, cfg.ProbeSchedule)
	assert.Equal(t, "host=localhost port=5432 user=shop password= dbname=shop sslmode=disable", cfg.DB.DSN())
}

func Test_LoadConfigEndpointsKeepOrder(t *testing.T) {
	values := storefrontEnv()
	values["GATEWAY_ENDPOINTS"] = "https://a.example/api/yalidine-orders|3s, https://b.example/api/yalidine-orders"
	values["GATEWAY_TIMEOUT"] = "7s"

	cfg, err := LoadConfig(env(values))

	require.NoError(t, err)
	require.Len(t, cfg.GatewayEndpoints, 2)
	assert.Equal(t, "https://a.example/api/yalidine-orders", cfg.GatewayEndpoints[0].URL)
	assert.Equal(t, 3*time.Second, cfg.GatewayEndpoints[0].Timeout)
	assert.Equal(t, 7*time.Second, cfg.GatewayEndpoints[1].Timeout)
}

func Test_LoadConfigReportsEveryProblem(t *testing.T) {
	cfg, err := LoadConfig(env(map[string]string{"GATEWAY_TIMEOUT": "soon"}))

	require.Error(t, err)
	assert.Empty(t, cfg.HTTPPort)

	var invalid *errs.ValueIsInvalidError
	assert.ErrorAs(t, err, &invalid)
	var missing *errs.ValueIsRequiredError
	assert.ErrorAs(t, err, &missing)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DB_HOST")
}

func Test_LoadConfigRejectsBadEndpoint(t *testing.T) {
	values := storefrontEnv()
	values["GATEWAY_ENDPOINTS"] = "relay-a:8081"

	_, err := LoadConfig(env(values))

	var invalid *errs.ValueIsInvalidError
	assert.ErrorAs(t, err, &invalid)
}

func Test_LoadGatewayConfig(t *testing.T) {
	cfg, err := LoadGatewayConfig(env(map[string]string{
		"PARTNER_NAME":       "Yalidine",
		"PARTNER_API_URL":    "https://partner.example/v1/parcels",
		"PARTNER_API_KEY":    "key",
		"PARTNER_API_SECRET": "secret",
		"ALLOWED_ORIGINS":    "https://shop.example, ,https://admin.shop.example",
		"IDEMPOTENCY_TTL":    "1h",
	}))

	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.HTTPPort)
	assert.Equal(t, "yalidine", cfg.PartnerName)
	assert.Equal(t, []string{"https://shop.example", "https://admin.shop.example"}, cfg.AllowedOrigins)
	assert.Equal(t, time.Hour, cfg.IdempotencyTTL)
	assert.Equal(t, defaultPartnerTimeout, cfg.Partner.Timeout)
	assert.Equal(t, defaultPurgeSchedule, cfg.LedgerPurgeSchedule)
	assert.Empty(t, cfg.RedisAddr)
}

func Test_LoadGatewayConfigNeedsCredentials(t *testing.T) {
	_, err := LoadGatewayConfig(env(map[string]string{"IDEMPOTENCY_TTL": "-1h"}))

	var missing *errs.ValueIsRequiredError
	assert.ErrorAs(t, err, &missing)
	var outOfRange *errs.ValueIsOutOfRangeError
	assert.ErrorAs(t, err, &outOfRange)
}

func Test_LoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("does not override the environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("VIZOSHOP_TEST_A=file\nVIZOSHOP_TEST_B=file\n"), 0o600))
		t.Setenv("VIZOSHOP_TEST_A", "env")
		t.Setenv("VIZOSHOP_TEST_B", "")
		require.NoError(t, os.Unsetenv("VIZOSHOP_TEST_B"))

		require.NoError(t, LoadEnvFile(path))

		assert.Equal(t, "env", os.Getenv("VIZOSHOP_TEST_A"))
		assert.Equal(t, "file", os.Getenv("VIZOSHOP_TEST_B"))
		require.NoError(t, os.Unsetenv("VIZOSHOP_TEST_B"))
	})
}
