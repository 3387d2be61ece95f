package view

// DefaultMaxVisible is the number of page links offered when none is configured.
const DefaultMaxVisible = 5

// PageWindow returns the page numbers to expose as navigation links.
//
// The window holds min(maxVisible, totalPages) consecutive pages. It starts at
// page 1 while current is within the first half-window, ends at totalPages while
// current is within the last half-window, and is centered on current otherwise.
// With maxVisible=5: total 3 gives [1 2 3]; total 10 gives [1..5] for current 1,
// [6..10] for current 10 and [3..7] for current 5.
func PageWindow(current, totalPages, maxVisible int) []int {
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}
	if totalPages <= 0 {
		return []int{}
	}

	half := maxVisible / 2
	var first, size int
	switch {
	case totalPages <= maxVisible:
		first, size = 1, totalPages
	case current <= half+1:
		first, size = 1, maxVisible
	case current >= totalPages-half:
		first, size = totalPages-maxVisible+1, maxVisible
	default:
		first, size = current-half, maxVisible
	}

	window := make([]int, size)
	for i := range window {
		window[i] = first + i
	}
	return window
}
