package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validServerConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SSOSecret:      "sso-secret",
			SSOCallbackURL: "https://app.example.com/sso/callback",
			TokenSignKey:   "sign-key",
			HookSecret:     "hook-secret",
		},
		Adapter: Adapter{
			ForumURL: "https://forum.example.com/",
			APIKey:   "api-key",
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/app"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a config with nothing
// set is rejected at startup.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstNonZeroWins verifies the merge order: earlier sources take
// precedence over later ones, later ones fill the gaps.
func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validServerConfig(),
		&StructuredConfig{App: App{SSOSecret: "ignored", Version: "1.0.0"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "sso-secret", cfg.App.SSOSecret)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

// TestBuild_AppliesDefaults verifies that unset fields receive defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validServerConfig())
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "system", cfg.Adapter.APIUsername)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.False(t, cfg.Adapter.InsecureSkipVerify)
	assert.Equal(t, InactivePolicyDeactivate, cfg.App.InactiveUserPolicy)
	assert.Equal(t, DeletePolicyLog, cfg.App.DeletePolicy)
	assert.Equal(t, "/", cfg.App.LoginRedirectURL)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, 10*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "gemdjsso_session", cfg.Session.CookieName)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

// TestBuild_DerivesSSOLoginURL verifies the forum URL is normalised and the
// SSO login URL derived from it when unset.
func TestBuild_DerivesSSOLoginURL(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validServerConfig())
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://forum.example.com", cfg.Adapter.ForumURL)
	assert.Equal(t, "https://forum.example.com/session/sso_provider", cfg.App.SSOLoginURL)
}

// TestBuild_KeepsExplicitSSOLoginURL verifies an explicit login URL is kept.
func TestBuild_KeepsExplicitSSOLoginURL(t *testing.T) {
	base := validServerConfig()
	base.App.SSOLoginURL = "https://sso.example.com/login"

	b := newConfigBuilder()
	b.configs = append(b.configs, base)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://sso.example.com/login", cfg.App.SSOLoginURL)
}

// TestBuildWith_SyncValidation verifies that the sync-only validation does
// not require SSO settings.
func TestBuildWith_SyncValidation(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Adapter: Adapter{ForumURL: "https://forum.example.com", APIKey: "k"},
		Storage: Storage{DB: DB{DSN: "file::memory:", Driver: DriverSQLite}},
	})
	b.withDefaults()

	cfg, err := b.buildWith((*StructuredConfig).validateSync)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

// ── withJSON ─────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathSkipsFile verifies that no JSON config is added when
// no source names a file.
func TestWithJSON_NoPathSkipsFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsFile verifies that the JSON file named by an earlier
// source is parsed and appended.
func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"forum_url": "https://forum.example.com", "api_key": "from-json"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-json", b.configs[1].Adapter.APIKey)
}

// TestWithJSON_MissingFileSetsError verifies that an unreadable JSON file
// surfaces as a builder error.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

// ── withEnv ──────────────────────────────────────────────────────────────────

// TestWithEnv_AppendsConfig verifies that env values end up in the builder.
func TestWithEnv_AppendsConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_API_KEY": "env-key"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-key", b.configs[0].Adapter.APIKey)
}
