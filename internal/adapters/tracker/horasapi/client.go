package horasapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arebot/horasbot/internal/domain"
	"github.com/arebot/horasbot/internal/ports"
)

const maxResponseBytes = 1 << 20

// Client talks to the demo-gestion-horas HTTP API on behalf of a single
// already-authenticated user. The bearer token is fixed at construction;
// one client per identity.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ ports.TimeTracker = (*Client)(nil)

func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

type projectPayload struct {
	ID     json.Number `json:"id"`
	Nombre string      `json:"nombre"`
}

func (c *Client) Projects(ctx context.Context) ([]domain.Project, error) {
	var payload []projectPayload
	if err := c.doJSON(ctx, http.MethodGet, "/api/projects", nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}

	projects := make([]domain.Project, 0, len(payload))
	for _, p := range payload {
		projects = append(projects, domain.Project{
			ID:   domain.ProjectID(p.ID.String()),
			Name: p.Nombre,
		})
	}

	return projects, nil
}

type weekPayload struct {
	Proyectos []weekProjectPayload `json:"proyectos"`
}

type weekProjectPayload struct {
	Nombre string             `json:"nombre"`
	Horas  map[string]float64 `json:"horas"`
}

func (c *Client) Week(ctx context.Context, monday time.Time) (domain.WeekHours, error) {
	var payload weekPayload
	path := "/api/imputaciones/semana/" + monday.Format("2006-01-02")
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return domain.WeekHours{}, fmt.Errorf("fetch week: %w", err)
	}

	week := domain.WeekHours{Projects: make([]domain.ProjectWeek, 0, len(payload.Proyectos))}
	for _, p := range payload.Proyectos {
		week.Projects = append(week.Projects, domain.ProjectWeek{
			Name:  p.Nombre,
			Hours: p.Horas,
		})
	}

	return week, nil
}

type recordPayload struct {
	ProjectID json.Number `json:"project_id"`
	Fecha     string      `json:"fecha"`
	Horas     float64     `json:"horas"`
}

func (c *Client) RecordHours(ctx context.Context, projectID domain.ProjectID, day time.Time, hours float64) error {
	body := recordPayload{
		ProjectID: json.Number(projectID),
		Fecha:     day.Format("2006-01-02"),
		Horas:     hours,
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/imputaciones", body, nil); err != nil {
		return fmt.Errorf("record hours: %w", err)
	}

	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var requestBody io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		requestBody = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, requestBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+c.token)
	if in != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		if response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden {
			return fmt.Errorf("%w: status %d", domain.ErrUnauthorized, response.StatusCode)
		}
		return fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
