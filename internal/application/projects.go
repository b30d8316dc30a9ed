package application

import (
	"strings"

	"github.com/arebot/horasbot/internal/domain"
)

// resolveProject maps a human-typed project name to its backend id by exact
// match on the normalized name. No fuzzy matching: a near-miss must fail
// rather than impute against the wrong project. The index is rebuilt from
// the live list on every call so renames and new projects apply immediately.
func resolveProject(projects []domain.Project, name string) (domain.ProjectID, bool) {
	index := make(map[string]domain.ProjectID, len(projects))
	for _, project := range projects {
		index[normalizeName(project.Name)] = project.ID
	}

	id, ok := index[normalizeName(name)]
	return id, ok
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
