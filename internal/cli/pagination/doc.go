// Package pagination provides the CLI side of paging and sorting a view.
//
// This package contains the pagination logic shared by the gridview commands:
//   - Params: flag registration, validation and replay onto a view.Table
//   - ParseSort: the "field[:asc|desc]" sort expression
package pagination
