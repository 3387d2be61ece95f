// Package detail renders the full-record view opened by activating a row.
//
// Every field of the record is listed, including fields hidden from the
// table, with labels aligned to the widest label and long values wrapped to
// the available width.
package detail
