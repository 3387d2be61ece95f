// Package source loads record collections from files.
//
// Supported inputs are JSON (an array of objects, or an envelope object with a
// "data" array), YAML (same shapes), CSV (header row plus data rows) and SQLite
// databases queried read-only. Several inputs load concurrently and are
// concatenated in argument order.
package source
