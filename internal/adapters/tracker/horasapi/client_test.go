package horasapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arebot/horasbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectsDecodesListAndSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1, "nombre": "Desarrollo"}, {"id": 2, "nombre": "Reuniones"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok-123", nil)
	projects, err := client.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, domain.Project{ID: "1", Name: "Desarrollo"}, projects[0])
	assert.Equal(t, domain.Project{ID: "2", Name: "Reuniones"}, projects[1])
}

func TestProjectsUnauthorizedMapsToSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "expired", nil)
	_, err := client.Projects(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestWeekRequestsMondayPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/imputaciones/semana/2026-02-02", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"proyectos": [{"nombre": "Desarrollo", "horas": {"2026-02-02": 8}}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok-123", nil)
	week, err := client.Week(context.Background(), time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, week.Projects, 1)
	assert.Equal(t, "Desarrollo", week.Projects[0].Name)
	assert.Equal(t, 8.0, week.Projects[0].Hours["2026-02-02"])
}

func TestWeekServerErrorIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok-123", nil)
	_, err := client.Week(context.Background(), time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestRecordHoursPostsImputation(t *testing.T) {
	var got recordPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/imputaciones", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok-123", nil)
	err := client.RecordHours(context.Background(), "7", time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), 4.5)
	require.NoError(t, err)
	assert.Equal(t, json.Number("7"), got.ProjectID)
	assert.Equal(t, "2026-02-03", got.Fecha)
	assert.Equal(t, 4.5, got.Horas)
}

func TestRecordHoursNon2xxFailsThatWriteOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "dia bloqueado", http.StatusConflict)
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok-123", nil)
	err := client.RecordHours(context.Background(), "7", time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), 8)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 409")
}

func TestBaseURLTrailingSlashIsNormalized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/projects", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "tok-123", server.Client())
	projects, err := client.Projects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}
