package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTodos() []TodoItem {
	return []TodoItem{
		{ID: "t-1", Text: "write tests"},
		{ID: "t-2", Text: "ship it", Completed: true},
	}
}

func TestAdd_AppendsWithoutMutatingInput(t *testing.T) {
	todos := sampleTodos()

	result := Add(todos, TodoItem{ID: "t-3", Text: "celebrate"})

	require.Len(t, result, 3)
	assert.Equal(t, "t-3", result[2].ID)
	assert.Len(t, todos, 2, "input collection must not change")
}

func TestPrepend_PutsNewestFirst(t *testing.T) {
	result := Prepend(sampleTodos(), TodoItem{ID: "t-0"})

	require.Len(t, result, 3)
	assert.Equal(t, "t-0", result[0].ID)
	assert.Equal(t, "t-1", result[1].ID)
}

func TestUpdate_ReplacesMatchingItem(t *testing.T) {
	todos := sampleTodos()

	result := Update(todos, TodoItem{ID: "t-1", Text: "write more tests"})

	assert.Equal(t, "write more tests", result[0].Text)
	assert.Equal(t, "write tests", todos[0].Text, "input collection must not change")
}

func TestUpdate_UnknownIDIsNoop(t *testing.T) {
	todos := sampleTodos()

	result := Update(todos, TodoItem{ID: "missing", Text: "x"})

	assert.Equal(t, todos, result)
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected []string
	}{
		{"existing item", "t-1", []string{"t-2"}},
		{"absent item", "nope", []string{"t-1", "t-2"}},
		{"empty id", "", []string{"t-1", "t-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todos := sampleTodos()
			result := Remove(todos, tt.id)

			ids := make([]string, len(result))
			for i, r := range result {
				ids[i] = r.ID
			}
			assert.Equal(t, tt.expected, ids)
			assert.Len(t, todos, 2)
		})
	}
}

func TestRemove_AbsentItemKeepsContent(t *testing.T) {
	bugs := []BugItem{{ID: "bug-1", Text: "crash", Priority: PriorityHigh}}

	result := Remove(bugs, "bug-404")

	assert.Equal(t, bugs, result)
}

func TestToggleTodo_TwiceRestoresOriginal(t *testing.T) {
	todos := sampleTodos()

	once := ToggleTodo(todos, "t-1")
	twice := ToggleTodo(once, "t-1")

	assert.True(t, once[0].Completed)
	assert.Equal(t, todos, twice)
}

func TestToggleTodo_UnknownIDIsNoop(t *testing.T) {
	todos := []TodoItem{{ID: "", Text: "no id"}, {ID: "t-1"}}

	result := ToggleTodo(todos, "missing")

	assert.Equal(t, todos, result)
}

func TestToggleBlockerAndBug(t *testing.T) {
	blockers := ToggleBlocker([]BlockerItem{{ID: "b-1"}}, "b-1")
	bugs := ToggleBug([]BugItem{{ID: "bug-1", Priority: PriorityLow, Resolved: true}}, "bug-1")

	assert.True(t, blockers[0].Resolved)
	assert.False(t, bugs[0].Resolved)
	assert.Equal(t, PriorityLow, bugs[0].Priority)
}

func TestAllTodosCompleted(t *testing.T) {
	tests := []struct {
		name     string
		todos    []TodoItem
		expected bool
	}{
		{"nil list", nil, true},
		{"empty list", []TodoItem{}, true},
		{"all done", []TodoItem{{ID: "a", Completed: true}, {ID: "b", Completed: true}}, true},
		{"one open", []TodoItem{{ID: "a", Completed: true}, {ID: "b"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AllTodosCompleted(tt.todos))
		})
	}
}

func TestParseBugPriority(t *testing.T) {
	p, err := ParseBugPriority(" high ")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = ParseBugPriority("urgent")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}
