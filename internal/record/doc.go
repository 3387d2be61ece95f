// Package record provides the dynamic record type loaded from files and the
// schema inference that turns its fields into view columns.
//
// A Record is a string-keyed bag of decoded values plus a stable key. Columns
// are inferred from the union of fields across all records, in first-seen
// order, and can be overridden by configuration (header, sortability,
// visibility and a named renderer).
package record
