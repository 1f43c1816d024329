package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// ApplicationKeys are available everywhere outside dialogs
type ApplicationKeys struct {
	ForceQuit  KeyWithTip
	Help       KeyWithTip
	NextTab    KeyWithTip
	PrevTab    KeyWithTip
	Quit       KeyWithTip
	Timestamps KeyWithTip
}

// NavigationKeys move the selection and between list and details
type NavigationKeys struct {
	Back KeyWithTip
	Down KeyWithTip
	Open KeyWithTip
	Up   KeyWithTip
}

// ItemKeys act on the selected row of any list
type ItemKeys struct {
	Delete KeyWithTip
	Edit   KeyWithTip
	New    KeyWithTip
	Toggle KeyWithTip
}

// AppKeys act on the selected app
type AppKeys struct {
	ActionPalette KeyWithTip
	AddLink       KeyWithTip
	Build         KeyWithTip
	CycleTracking KeyWithTip
	Deploy        KeyWithTip
	Logs          KeyWithTip
	Metrics       KeyWithTip
	NextStage     KeyWithTip
	Release       KeyWithTip
	RunTests      KeyWithTip
	StartStop     KeyWithTip
	SuggestNames  KeyWithTip
	Write         KeyWithTip
}

// ShortsKeys act on the selected short-video idea
type ShortsKeys struct {
	AdvanceStatus KeyWithTip
	SetStatus     KeyWithTip
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Apps        AppKeys
	Items       ItemKeys
	Navigation  NavigationKeys
	Shorts      ShortsKeys
}

// NewKeyMap creates a KeyMap with the default bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		Application: ApplicationKeys{
			ForceQuit:  buildBinding("force_quit"),
			Help:       buildBinding("help"),
			NextTab:    buildBinding("next_tab"),
			PrevTab:    buildBinding("prev_tab"),
			Quit:       buildBinding("quit"),
			Timestamps: buildBinding("timestamps"),
		},
		Apps: AppKeys{
			ActionPalette: buildBinding("action_palette"),
			AddLink:       buildBinding("add_link"),
			Build:         buildBinding("build"),
			CycleTracking: buildBinding("cycle_tracking"),
			Deploy:        buildBinding("deploy"),
			Logs:          buildBinding("logs"),
			Metrics:       buildBinding("metrics"),
			NextStage:     buildBinding("next_stage"),
			Release:       buildBinding("release"),
			RunTests:      buildBinding("run_tests"),
			StartStop:     buildBinding("start_stop"),
			SuggestNames:  buildBinding("suggest_names"),
			Write:         buildBinding("write"),
		},
		Items: ItemKeys{
			Delete: buildBinding("delete"),
			Edit:   buildBinding("edit"),
			New:    buildBinding("new"),
			Toggle: buildBinding("toggle"),
		},
		Navigation: NavigationKeys{
			Back: buildBinding("back"),
			Down: buildBinding("down"),
			Open: buildBinding("open"),
			Up:   buildBinding("up"),
		},
		Shorts: ShortsKeys{
			AdvanceStatus: buildBinding("advance_status"),
			SetStatus:     buildBinding("set_status"),
		},
	}
}

// buildBinding creates a KeyWithTip from its definition
func buildBinding(name string) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	helpKeys := make([]string, len(def.Defaults))
	for i, k := range def.Defaults {
		if k == " " {
			k = "space"
		}
		helpKeys[i] = k
	}

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(def.Defaults...),
			key.WithHelp(strings.Join(helpKeys, "/"), def.Help),
		),
	}
	if def.TipFormat != "" {
		result.Tip = newTip(def.TipFormat, helpKeys[0])
	}
	return result
}

// ShortHelp returns the bindings shown in the footer for a tab
func (k KeyMap) ShortHelp(tab tab) []key.Binding {
	bindings := []key.Binding{k.Items.New.Binding}
	switch tab {
	case tabApps:
		bindings = append(bindings,
			k.Navigation.Open.Binding,
			k.Apps.ActionPalette.Binding,
			k.Apps.StartStop.Binding,
			k.Apps.Logs.Binding,
			k.Items.Edit.Binding,
		)
	case tabTodos:
		bindings = append(bindings, k.Items.Toggle.Binding, k.Items.Edit.Binding)
	case tabShorts:
		bindings = append(bindings, k.Shorts.SetStatus.Binding, k.Shorts.AdvanceStatus.Binding, k.Items.Edit.Binding)
	}
	return append(bindings,
		k.Items.Delete.Binding,
		k.Application.NextTab.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	)
}

// DetailsHelp returns the bindings shown in the footer of the app details view
func (k KeyMap) DetailsHelp() []key.Binding {
	return []key.Binding{
		k.Apps.ActionPalette.Binding,
		k.Items.New.Binding,
		k.Items.Toggle.Binding,
		k.Apps.CycleTracking.Binding,
		k.Apps.Write.Binding,
		k.Apps.NextStage.Binding,
		k.Apps.RunTests.Binding,
		k.Apps.Build.Binding,
		k.Apps.Deploy.Binding,
		k.Navigation.Back.Binding,
	}
}
