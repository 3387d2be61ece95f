// Package render prints one derived page of a view for non-interactive use.
package render
