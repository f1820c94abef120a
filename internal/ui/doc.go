// Package ui provides the Bubble Tea browser for factory image summaries.
//
// The browser is read-only and offline: the fetch happens before the program
// starts, and the model only navigates the summarized builds. One screen
// shows a scrollable build list over a detail pane; `/` filters by product,
// version, or build name; `T` cycles themes and persists the choice through
// the prefs package.
package ui
