package domain

// Intent is the structured command produced by the natural-language
// interpreter. It is a closed sum: the interpreter validates the wire tag
// once, and everything past that boundary switches on the concrete type.
type Intent interface {
	intent()
}

// Conversation carries a ready-made reply for messages without a command.
type Conversation struct {
	Reply string
}

// ListProjects asks for the caller's project list.
type ListProjects struct{}

// WeekQuery asks for the logged hours of the week containing Date.
// Date is an ISO calendar date ("2026-02-03"); empty means today.
type WeekQuery struct {
	Date string
}

// LogHours records hours against one or more projects.
type LogHours struct {
	Entries []Entry
}

// Entry is one project/hours/days unit within a LogHours batch.
// Days holds lowercase accent-free working-day names ("lunes".."viernes")
// as emitted by the interpreter.
type Entry struct {
	Project string
	Hours   float64
	Days    []string
}

// UnknownIntent preserves a wire tag outside the known set so the
// dispatcher can report it instead of crashing.
type UnknownIntent struct {
	Tag string
}

func (Conversation) intent()  {}
func (ListProjects) intent()  {}
func (WeekQuery) intent()     {}
func (LogHours) intent()      {}
func (UnknownIntent) intent() {}
