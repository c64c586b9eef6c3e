package config

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultMongoURL, cfg.MongoURL)
	assert.Equal(t, DefaultDBName, cfg.DBName)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, DefaultJWTExpiryMinutes, cfg.JWTExpiryMinutes)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("MONGO_CONNECTION_STRING", "mongodb://db:27017/blogsite")
	t.Setenv("DB_NAME", "blogsite")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("JWT_EXPIRY_MINUTES", "60")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://db:27017/blogsite", cfg.MongoURL)
	assert.Equal(t, "blogsite", cfg.DBName)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
	assert.Equal(t, 60, cfg.JWTExpiryMinutes)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config", ".env.dev"),
		[]byte("PORT=4000\nJWT_SECRET=file-secret\n"),
		0o644,
	))

	chdir(t, dir)

	cfg := Load()

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config", ".env.dev"),
		[]byte("PORT=4000\nJWT_SECRET=file-secret\n"),
		0o644,
	))

	chdir(t, dir)
	t.Setenv("PORT", "9090")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
}

// TestLoad_MissingJWTSecret re-runs the test binary so the log.Fatalf exit can
// be observed without killing the test process.
func TestLoad_MissingJWTSecret(t *testing.T) {
	if os.Getenv("CONFIG_TEST_FATAL") == "1" {
		chdir(t, t.TempDir())
		os.Unsetenv("JWT_SECRET")
		Load()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestLoad_MissingJWTSecret")
	cmd.Env = append(os.Environ(), "CONFIG_TEST_FATAL=1", "JWT_SECRET=")

	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.False(t, exitErr.Success())
}

func TestGetEnvAsInt(t *testing.T) {
	t.Run("unset uses default", func(t *testing.T) {
		assert.Equal(t, 30, getEnvAsInt("SOME_UNSET_INT", 30))
	})

	t.Run("valid value parses", func(t *testing.T) {
		t.Setenv("SOME_INT", "15")
		assert.Equal(t, 15, getEnvAsInt("SOME_INT", 30))
	})

	t.Run("garbage falls back to default", func(t *testing.T) {
		t.Setenv("SOME_INT", "not-a-number")
		assert.Equal(t, 30, getEnvAsInt("SOME_INT", 30))
	})
}
