package domain

// CommandType is the intent category of a spoken command.
type CommandType string

const (
	CommandTypeNavigation   CommandType = "navigation"
	CommandTypeReminder     CommandType = "reminder"
	CommandTypeMemoryRecall CommandType = "memory_recall"
	CommandTypeJournalEntry CommandType = "journal_entry"
	CommandTypeActivityLog  CommandType = "activity_log"
	CommandTypeGeneral      CommandType = "general"
)

func (c CommandType) String() string { return string(c) }

func (c CommandType) IsValid() bool {
	switch c {
	case CommandTypeNavigation, CommandTypeReminder, CommandTypeMemoryRecall,
		CommandTypeJournalEntry, CommandTypeActivityLog, CommandTypeGeneral:
		return true
	}
	return false
}

// PriorityLevel ranks an activity.
type PriorityLevel string

const (
	PriorityLow    PriorityLevel = "low"
	PriorityMedium PriorityLevel = "medium"
	PriorityHigh   PriorityLevel = "high"
	PriorityUrgent PriorityLevel = "urgent"
)

func (p PriorityLevel) String() string { return string(p) }

func (p PriorityLevel) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// CompletionStatus is the lifecycle state of a planned activity.
type CompletionStatus string

const (
	CompletionPending   CompletionStatus = "pending"
	CompletionCompleted CompletionStatus = "completed"
	CompletionSkipped   CompletionStatus = "skipped"
	CompletionCancelled CompletionStatus = "cancelled"
)

func (s CompletionStatus) String() string { return string(s) }

func (s CompletionStatus) IsValid() bool {
	switch s {
	case CompletionPending, CompletionCompleted, CompletionSkipped, CompletionCancelled:
		return true
	}
	return false
}

// NavigationStatus is the state of a guided navigation session.
type NavigationStatus string

const (
	NavigationActive    NavigationStatus = "active"
	NavigationCompleted NavigationStatus = "completed"
	NavigationCancelled NavigationStatus = "cancelled"
)

func (s NavigationStatus) String() string { return string(s) }
