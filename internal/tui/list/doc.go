// Package listview provides a scrolling row cursor for Bubble Tea TUI applications.
//
// The model renders only the rows that fit the viewport and keeps the
// selected row visible. Key features:
//   - Keyboard navigation (up/down, j/k, pgup/pgdn, home/end)
//   - Item replacement that keeps the cursor on a valid row
//   - Caller-supplied row rendering with a selected flag
package listview
