package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/arebot/horasbot/internal/domain"
	"github.com/arebot/horasbot/internal/ports"
)

// Service executes typed intents against a caller-bound time tracker and
// renders the chat reply. Expected failures never escape Execute as errors:
// every outcome, partial ones included, ends up in the reply text.
type Service struct {
	tracker ports.TimeTracker
	clock   ports.Clock
}

func NewService(tracker ports.TimeTracker, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		tracker: tracker,
		clock:   clock,
	}
}

// Execute routes an intent to its executor and returns the reply unchanged.
func (s *Service) Execute(ctx context.Context, intent domain.Intent) string {
	switch intent := intent.(type) {
	case domain.Conversation:
		if strings.TrimSpace(intent.Reply) == "" {
			return "Hola, ¿en qué puedo ayudarte?"
		}
		return intent.Reply
	case domain.ListProjects:
		return s.listProjects(ctx)
	case domain.WeekQuery:
		return s.queryWeek(ctx, intent.Date)
	case domain.LogHours:
		return s.logHours(ctx, intent.Entries)
	case domain.UnknownIntent:
		return fmt.Sprintf("❌ Tipo de comando desconocido: %s", intent.Tag)
	default:
		return fmt.Sprintf("❌ Tipo de comando desconocido: %T", intent)
	}
}

func (s *Service) listProjects(ctx context.Context) string {
	projects, err := s.tracker.Projects(ctx)
	if err != nil || len(projects) == 0 {
		return "📋 No tienes proyectos creados aún.\n\nPuedes crear uno haciendo clic en el botón 'CREAR PROYECTO' en la tabla."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 **Tus proyectos (%d)**\n\n", len(projects))
	for i, project := range projects {
		fmt.Fprintf(&b, "%d. %s\n", i+1, project.Name)
	}
	b.WriteString("\n💡 Puedes imputar horas diciendo: 'Pon 8h en [nombre del proyecto]'")

	return b.String()
}

var weekdayLabels = [...]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes"}

func (s *Service) queryWeek(ctx context.Context, date string) string {
	ref, err := ParseReferenceDate(date, s.clock)
	if err != nil {
		return fmt.Sprintf("❌ No entiendo la fecha '%s'.", date)
	}
	monday := WeekMonday(ref)

	week, err := s.tracker.Week(ctx, monday)
	if err != nil {
		return "❌ No he podido consultar la semana."
	}
	if len(week.Projects) == 0 {
		return fmt.Sprintf("📅 Semana del %s: No tienes horas imputadas.", monday.Format("02/01/2006"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 **Semana del %s**\n\n", monday.Format("02/01/2006"))

	var weekTotal float64
	for _, project := range week.Projects {
		projectTotal := project.Total()
		weekTotal += projectTotal
		fmt.Fprintf(&b, "**%s**: %sh\n", project.Name, formatHours(projectTotal))

		// Fixed Monday→Friday order, days without hours omitted.
		days := make([]string, 0, len(weekdayLabels))
		for offset := range weekdayLabels {
			key := monday.AddDate(0, 0, offset).Format("2006-01-02")
			if h := project.Hours[key]; h > 0 {
				days = append(days, fmt.Sprintf("%s: %sh", weekdayLabels[offset], formatHours(h)))
			}
		}
		if len(days) > 0 {
			b.WriteString("  " + strings.Join(days, ", ") + "\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**TOTAL**: %sh", formatHours(weekTotal))

	return b.String()
}

func (s *Service) logHours(ctx context.Context, entries []domain.Entry) string {
	projects, err := s.tracker.Projects(ctx)
	if err != nil || len(projects) == 0 {
		return "❌ No tienes proyectos creados."
	}

	var successes []string
	var failures []string

	for _, entry := range entries {
		projectID, ok := resolveProject(projects, entry.Project)
		if !ok {
			failures = append(failures, fmt.Sprintf("❌ Proyecto '%s' no encontrado", entry.Project))
			continue
		}

		// Days are always relative to the current week; the batch carries
		// no explicit reference date.
		dates := ResolveDays(entry.Days, s.clock.Now())
		if len(dates) == 0 {
			failures = append(failures, fmt.Sprintf("❌ No se pudieron procesar los días de '%s'", entry.Project))
			continue
		}

		recorded := 0
		for _, date := range dates {
			if err := s.tracker.RecordHours(ctx, projectID, date, entry.Hours); err == nil {
				recorded++
			}
		}

		if recorded > 0 {
			// The listed day names are the requested ones even when a write
			// failed; only the count reflects actual successes.
			successes = append(successes, fmt.Sprintf("✅ %s: %sh × %d días (%s)",
				entry.Project, formatHours(entry.Hours), recorded, strings.Join(entry.Days, ", ")))
		} else {
			failures = append(failures, fmt.Sprintf("❌ No se pudo imputar en '%s'", entry.Project))
		}
	}

	sections := make([]string, 0, 2)
	if len(successes) > 0 {
		sections = append(sections, strings.Join(successes, "\n"))
	}
	if len(failures) > 0 {
		sections = append(sections, strings.Join(failures, "\n"))
	}
	if len(sections) == 0 {
		return "❌ No se pudo realizar ninguna imputación"
	}

	return strings.Join(sections, "\n\n")
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
