package cmd

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/arebot/horasbot/internal/adapters/secrets/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommandPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestChatRequiresTokenFlag(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "chat", "hola")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"token\" not set")
}

func TestChatRequiresExactlyOneMessage(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "chat", "--token", "tok-1", "hola", "adios")
	require.Error(t, err)
}

func TestUnknownCommandRejected(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "resumen")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"resumen\"")
}

func TestConfigInitWritesDefaults(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "config", "init")
	require.NoError(t, err)

	path := filepath.Join(home, ".horasbot", "config.toml")
	assert.Contains(t, stdout, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[server]")
	assert.Contains(t, string(content), "8001")
	assert.Contains(t, string(content), "openai")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "config", "init")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestConfigSetKeyStoresSecretInKeyring(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "config", "set-key", "--provider", "openai", "--value", "sk-test-123")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Stored API key for openai")

	store := keyring.NewStore(filepath.Join(home, ".horasbot", "keyring.toml"))
	value, err := store.Get(context.Background(), "openai_api_key")
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", value)
}

func TestConfigSetKeyRejectsUnknownProvider(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "config", "set-key", "--provider", "mistral", "--value", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ai provider")
}

func TestChatWithoutAnyAPIKeyFails(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "chat", "--token", "tok-1", "hola")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API key for openai")
}

func TestChatListsProjectsEndToEnd(t *testing.T) {
	aiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"{\"tipo\":\"listar_proyectos\"}"}}]}`)
	}))
	defer aiServer.Close()

	trackerServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_, _ = fmt.Fprint(w, `[{"id":1,"nombre":"Desarrollo"},{"id":2,"nombre":"Reuniones"}]`)
	}))
	defer trackerServer.Close()

	t.Setenv("HORASBOT_AI_BASE_URL", aiServer.URL)
	t.Setenv("HORASBOT_AI_API_KEY", "test-key")
	t.Setenv("HORASBOT_API_BASE_URL", trackerServer.URL)

	stdout, _, err := executeCLI(t, t.TempDir(), "chat", "--token", "tok-1", "--plain", "qué proyectos tengo")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Tus proyectos (2)")
	assert.Contains(t, stdout, "Desarrollo")
	assert.Contains(t, stdout, "Reuniones")
}

func TestChatReportsInterpreterFailure(t *testing.T) {
	aiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer aiServer.Close()

	t.Setenv("HORASBOT_AI_BASE_URL", aiServer.URL)
	t.Setenv("HORASBOT_AI_API_KEY", "test-key")

	_, _, err := executeCLI(t, t.TempDir(), "chat", "--token", "tok-1", "--plain", "hola")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interpret message")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
