package ports

import (
	"context"
	"time"

	"github.com/arebot/horasbot/internal/domain"
)

// TimeTracker is the remote time-tracking API, already bound to one
// caller's bearer identity.
type TimeTracker interface {
	Projects(ctx context.Context) ([]domain.Project, error)
	Week(ctx context.Context, monday time.Time) (domain.WeekHours, error)
	RecordHours(ctx context.Context, projectID domain.ProjectID, day time.Time, hours float64) error
}
