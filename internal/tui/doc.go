// Package tui is the interactive table browser built on Bubble Tea.
//
// The browser embeds a view.Table controller: every key press becomes one
// controller operation and the screen is redrawn from the derived view. The
// browser owns only presentation state (focused column, row cursor, search
// box focus, detail view).
package tui
