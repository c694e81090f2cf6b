// Package ui contains the Bubble Tea front end used when the program runs on
// a terminal. Each menu.Menu is shown by its own short-lived tea.Program and
// the chosen number is handed back through the menu.Prompter interface, so
// the selection engine never knows which front end is active.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Arrow, home/end and page keys move a state.Cursor; digits edit the
//     number being typed and pull the cursor onto it when in range. Enter
//     resolves the typed number (or the cursor row when nothing is typed) and
//     quits the program; esc and ctrl+c quit with no value.
//
// Free-text questions (age, biography, profile names) are asked through huh
// forms by Asker.
package ui
