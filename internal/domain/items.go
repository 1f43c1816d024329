package domain

// Identifiable is implemented by every element of an item collection
type Identifiable interface {
	GetID() string
}

// TodoItem is a checklist entry, used both per app and for the dashboard-wide list
type TodoItem struct {
	Completed bool   `json:"completed" yaml:"completed"`
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
}

// GetID implements Identifiable
func (t TodoItem) GetID() string { return t.ID }

// BlockerItem is something preventing progress on an app
type BlockerItem struct {
	ID       string `json:"id" yaml:"id"`
	Resolved bool   `json:"resolved" yaml:"resolved"`
	Text     string `json:"text" yaml:"text"`
}

// GetID implements Identifiable
func (b BlockerItem) GetID() string { return b.ID }

// BugItem is a known defect of an app
type BugItem struct {
	ID       string      `json:"id" yaml:"id"`
	Priority BugPriority `json:"priority" yaml:"priority"`
	Resolved bool        `json:"resolved" yaml:"resolved"`
	Text     string      `json:"text" yaml:"text"`
}

// GetID implements Identifiable
func (b BugItem) GetID() string { return b.ID }

// BugPriority ranks a bug
type BugPriority string

const (
	PriorityHigh   BugPriority = "High"
	PriorityMedium BugPriority = "Medium"
	PriorityLow    BugPriority = "Low"
)

// BugPriorities lists priorities from most to least urgent
var BugPriorities = []BugPriority{PriorityHigh, PriorityMedium, PriorityLow}

// IsValid reports whether p is one of the known priorities
func (p BugPriority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ParseBugPriority converts user input (case-insensitive) to a BugPriority
func ParseBugPriority(s string) (BugPriority, error) {
	for _, p := range BugPriorities {
		if equalFold(string(p), s) {
			return p, nil
		}
	}
	return "", invalidValue(ErrInvalidPriority, s)
}

// Add returns a new collection with item appended. The caller supplies a fresh ID.
func Add[T Identifiable](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// Prepend returns a new collection with item in front (newest-first lists)
func Prepend[T Identifiable](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// Update returns a new collection where the element sharing item's ID is replaced.
// Unknown IDs leave the collection unchanged.
func Update[T Identifiable](items []T, item T) []T {
	out := make([]T, len(items))
	for i, existing := range items {
		if existing.GetID() == item.GetID() {
			out[i] = item
			continue
		}
		out[i] = existing
	}
	return out
}

// Remove returns a new collection without the element with the given ID
func Remove[T Identifiable](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, existing := range items {
		if existing.GetID() != id {
			out = append(out, existing)
		}
	}
	return out
}

// Toggle applies flip to the element with the given ID
func Toggle[T Identifiable](items []T, id string, flip func(T) T) []T {
	item, ok := Find(items, id)
	if !ok {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	return Update(items, flip(item))
}

// Find returns the element with the given ID
func Find[T Identifiable](items []T, id string) (T, bool) {
	for _, existing := range items {
		if existing.GetID() == id {
			return existing, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether an element with the given ID exists
func Contains[T Identifiable](items []T, id string) bool {
	_, ok := Find(items, id)
	return ok
}

// ToggleTodo flips Completed on the todo with the given ID
func ToggleTodo(items []TodoItem, id string) []TodoItem {
	return Toggle(items, id, func(t TodoItem) TodoItem {
		t.Completed = !t.Completed
		return t
	})
}

// ToggleBlocker flips Resolved on the blocker with the given ID
func ToggleBlocker(items []BlockerItem, id string) []BlockerItem {
	return Toggle(items, id, func(b BlockerItem) BlockerItem {
		b.Resolved = !b.Resolved
		return b
	})
}

// ToggleBug flips Resolved on the bug with the given ID
func ToggleBug(items []BugItem, id string) []BugItem {
	return Toggle(items, id, func(b BugItem) BugItem {
		b.Resolved = !b.Resolved
		return b
	})
}

// AllTodosCompleted is true when the list is empty or every todo is completed
func AllTodosCompleted(todos []TodoItem) bool {
	for _, t := range todos {
		if !t.Completed {
			return false
		}
	}
	return true
}

// OpenCount counts todos that are not completed
func OpenCount(todos []TodoItem) int {
	n := 0
	for _, t := range todos {
		if !t.Completed {
			n++
		}
	}
	return n
}
