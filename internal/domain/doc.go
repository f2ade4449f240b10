// Package domain contains the core model for workoutlog: the add-workout form state,
// the events that drive it and the pure reducer that moves between states.
//
// The domain is transport- and UI-agnostic: it does not depend on net/http, YAML parsing,
// bubbletea or the filesystem. Hosts (TUI, CLI) and infra adapters map into/from these types.
package domain
