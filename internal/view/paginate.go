package view

// TotalPages returns ceil(count/pageSize); 0 for an empty collection.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	pages := count / pageSize
	if count%pageSize > 0 {
		pages++
	}
	return pages
}

// Paginate returns the items of page (1-based) and the total page count.
// A page past the end yields an empty slice; page is not clamped here.
func Paginate[T any](records []T, page, pageSize int) ([]T, int) {
	total := TotalPages(len(records), pageSize)
	if page < 1 || pageSize <= 0 {
		return []T{}, total
	}

	start := (page - 1) * pageSize
	if start >= len(records) {
		return []T{}, total
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end], total
}
