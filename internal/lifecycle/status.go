package lifecycle

import "fmt"

// NewsStatus is the publishing state of a news post.
type NewsStatus string

const (
	StatusDraft     NewsStatus = "draft"
	StatusPublished NewsStatus = "published"
	StatusArchived  NewsStatus = "archived"
)

func (s NewsStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

func (s NewsStatus) String() string {
	return string(s)
}

// The lifecycle is one-way: once published a post cannot return to draft,
// and archived is terminal.
var allowedTransitions = map[NewsStatus][]NewsStatus{
	StatusDraft:     {StatusPublished, StatusArchived},
	StatusPublished: {StatusArchived},
	StatusArchived:  {},
}

// ValidateTransition rejects any status change outside the one-way
// draft -> published -> archived machine. A no-op transition is always fine.
func ValidateTransition(from, to NewsStatus) error {
	if !to.IsValid() {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", to)}
	}
	if from == to {
		return nil
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return nil
		}
	}
	return &ValidationError{
		Field:  "status",
		Reason: fmt.Sprintf("invalid transition %s -> %s", from, to),
	}
}
