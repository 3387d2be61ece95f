package tui

// Key bindings.
const (
	keyQuit      = "q"
	keyCtrlC     = "ctrl+c"
	keyEnter     = "enter"
	keyEsc       = "esc"
	keySlash     = "/"
	keyS         = "s"
	keyNext      = "n"
	keyPrev      = "p"
	keyLeft      = "left"
	keyRight     = "right"
	keyH         = "h"
	keyL         = "l"
	keyPlus      = "+"
	keyMinus     = "-"
	keyReload    = "r"
	helpListText = "[/] Search  [←→] Column  [s] Sort  [n/p] Page  [1-5] Jump  [+/-] Size  [↑↓] Row  [Enter] Open  [r] Reload  [q] Quit"
)

// Layout defaults.
const (
	defaultWidth         = 100
	defaultHeight        = 30
	minHeight            = 3
	filterInputCharLimit = 256
	filterInputWidth     = 40
	cellGap              = 2

	// chromeHeight is the number of lines around the rows: title, search,
	// header with its border, pager, status and help.
	chromeHeight = 8
)
