// Package view derives what a tabular screen should display from an in-memory collection.
//
// The pipeline runs in a fixed order and is recomputed in full on every state change:
//   - Filter: keeps records where any field contains the query
//   - Sort: orders the filtered records by one column, locale-aware for text
//   - Paginate: slices the sorted records into the current page
//   - PageWindow: picks the bounded set of page numbers to offer as links
//
// State holds the query, sort, page and page size. It only changes through the
// transition functions (or Reduce), and Derive is a pure function of State and the
// records. Table wires both together for an embedding screen that owns the records.
package view
