package ui

import (
	"sort"
	"sync"
)

// KeyDefinition describes one key binding: its name, default keys, help text and tip
type KeyDefinition struct {
	Defaults  []string
	Help      string
	Name      string
	TipFormat string
}

// AllKeyDefinitions is the single source of truth for key names, defaults, help and tips
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", TipFormat: "press %s to see all shortcuts"},
	{Name: "next_tab", Defaults: []string{"tab"}, Help: "next view", TipFormat: "press %s to switch between apps, todos and shorts"},
	{Name: "prev_tab", Defaults: []string{"shift+tab"}, Help: "previous view"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},
	{Name: "timestamps", Defaults: []string{"t"}, Help: "toggle timestamps", TipFormat: "press %s to show or hide timestamps"},

	// Navigation keys
	{Name: "back", Defaults: []string{"esc"}, Help: "back to list"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next"},
	{Name: "open", Defaults: []string{"enter"}, Help: "open details"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous"},

	// Item keys, shared by every list
	{Name: "delete", Defaults: []string{"d"}, Help: "delete"},
	{Name: "edit", Defaults: []string{"e"}, Help: "edit"},
	{Name: "new", Defaults: []string{"n", "a"}, Help: "add new"},
	{Name: "toggle", Defaults: []string{" ", "x"}, Help: "toggle done"},

	// App keys
	{Name: "action_palette", Defaults: []string{"p"}, Help: "actions for this app", TipFormat: "press %s to list what you can do with an app in its current stage"},
	{Name: "add_link", Defaults: []string{"+"}, Help: "add link"},
	{Name: "build", Defaults: []string{"b"}, Help: "run build"},
	{Name: "cycle_tracking", Defaults: []string{"c"}, Help: "cycle todos, blockers and bugs", TipFormat: "press %s in the details view to switch between todos, blockers and bugs"},
	{Name: "deploy", Defaults: []string{"D"}, Help: "deploy"},
	{Name: "logs", Defaults: []string{"l"}, Help: "view logs", TipFormat: "press %s to read the log of an app"},
	{Name: "metrics", Defaults: []string{"m"}, Help: "edit metrics"},
	{Name: "next_stage", Defaults: []string{"S"}, Help: "move to next dev stage", TipFormat: "press %s to move an app to its next dev stage"},
	{Name: "release", Defaults: []string{"r"}, Help: "edit release info", TipFormat: "press %s to write release notes before deploying"},
	{Name: "start_stop", Defaults: []string{"s"}, Help: "start or stop"},
	{Name: "suggest_names", Defaults: []string{"N"}, Help: "new app from name suggestions", TipFormat: "press %s to pick a name for a new app"},
	{Name: "run_tests", Defaults: []string{"T"}, Help: "run tests"},
	{Name: "write", Defaults: []string{"w"}, Help: "write ideas, docs or notes"},

	// Shorts keys
	{Name: "advance_status", Defaults: []string{">"}, Help: "advance pipeline status"},
	{Name: "set_status", Defaults: []string{"s"}, Help: "choose pipeline status"},
}

var (
	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once
)

// GetKeyDefinition returns the definition for a key by name, nil if unknown
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all key binding names in sorted order
func GetValidKeyNames() []string {
	names := make([]string, len(AllKeyDefinitions))
	for i, def := range AllKeyDefinitions {
		names[i] = def.Name
	}
	sort.Strings(names)
	return names
}
