package domain

// ProjectID is the backend-assigned project identifier, opaque to the bot.
type ProjectID string

// Project is a row of the caller's project list. Name carries no uniqueness
// guarantee; identity is the ID.
type Project struct {
	ID   ProjectID
	Name string
}

// WeekHours is one week of logged hours as returned by the remote API.
type WeekHours struct {
	Projects []ProjectWeek
}

// ProjectWeek holds the per-day hours of a single project.
// Hours is keyed by ISO calendar date ("2026-02-02").
type ProjectWeek struct {
	Name  string
	Hours map[string]float64
}

// Total sums the hours of every day in the week.
func (p ProjectWeek) Total() float64 {
	var total float64
	for _, h := range p.Hours {
		total += h
	}
	return total
}
