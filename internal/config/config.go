// Package config loads gridview's layered configuration and owns the global logger.
package config

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/rshade/gridview/internal/cli/pagination"
	"github.com/rshade/gridview/internal/logging"
	"github.com/rshade/gridview/internal/record"
	"github.com/rshade/gridview/internal/render"
	"github.com/rshade/gridview/internal/view"
)

// Configuration keys shared by the loader, flags and environment.
const (
	KeyInputs            = "inputs"
	KeyQuery             = "query"
	KeySort              = "sort"
	KeyPage              = "page"
	KeyPageSize          = "page_size"
	KeyFormat            = "format"
	KeyMaxVisible        = "max_visible"
	KeyLocale            = "locale"
	KeyKeyField          = "key_field"
	KeyCSVNumbers        = "csv_numbers"
	KeySQLQuery          = "sql_query"
	KeyWatch             = "watch"
	KeySearchPlaceholder = "placeholders.search"
	KeyEmptyPlaceholder  = "placeholders.empty"
	KeyLogLevel          = "logging.level"
	KeyLogFormat         = "logging.format"
	KeyLogFile           = "logging.file"
)

// Validation errors.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidLocale = errors.New("invalid locale")
)

// Placeholders overrides the texts shown for an empty search box and an empty page.
type Placeholders struct {
	Search string `koanf:"search" yaml:"search,omitempty"`
	Empty  string `koanf:"empty"  yaml:"empty,omitempty"`
}

// Config holds every gridview setting.
type Config struct {
	Inputs       []string            `koanf:"inputs"       yaml:"inputs,omitempty"`
	Query        string              `koanf:"query"        yaml:"query,omitempty"`
	Sort         string              `koanf:"sort"         yaml:"sort,omitempty"`
	Page         int                 `koanf:"page"         yaml:"page"`
	PageSize     int                 `koanf:"page_size"    yaml:"page_size"`
	Format       string              `koanf:"format"       yaml:"format"`
	MaxVisible   int                 `koanf:"max_visible"  yaml:"max_visible"`
	Locale       string              `koanf:"locale"       yaml:"locale"`
	KeyField     string              `koanf:"key_field"    yaml:"key_field"`
	CSVNumbers   bool                `koanf:"csv_numbers"  yaml:"csv_numbers"`
	SQLQuery     string              `koanf:"sql_query"    yaml:"sql_query,omitempty"`
	Watch        bool                `koanf:"watch"        yaml:"watch"`
	Placeholders Placeholders        `koanf:"placeholders" yaml:"placeholders"`
	Columns      []record.ColumnSpec `koanf:"columns"      yaml:"columns,omitempty"`
	Logging      logging.Config      `koanf:"logging"      yaml:"logging"`
}

// Defaults returns the flat default values loaded before any other layer.
func Defaults() map[string]any {
	logDefaults := logging.DefaultConfig()
	return map[string]any{
		KeyPage:              pagination.DefaultPage,
		KeyPageSize:          int(view.DefaultPageSize),
		KeyFormat:            string(render.FormatTable),
		KeyMaxVisible:        view.DefaultMaxVisible,
		KeyLocale:            view.DefaultLocale.String(),
		KeyKeyField:          record.DefaultKeyField,
		KeyCSVNumbers:        false,
		KeyWatch:             false,
		KeySearchPlaceholder: view.DefaultSearchPlaceholder,
		KeyEmptyPlaceholder:  view.DefaultEmptyPlaceholder,
		KeyLogLevel:          logDefaults.Level,
		KeyLogFormat:         logDefaults.Format,
	}
}

// Validate checks every setting that has a closed set of values.
func (c *Config) Validate() error {
	var errs []error

	if _, err := view.ParsePageSize(c.PageSize); err != nil {
		errs = append(errs, err)
	}
	if c.Page < pagination.MinPage {
		errs = append(errs, fmt.Errorf("%w: got %d", pagination.ErrInvalidPage, c.Page))
	}
	if _, _, err := pagination.ParseSort(c.Sort); err != nil {
		errs = append(errs, err)
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if c.MaxVisible < 1 {
		errs = append(errs, fmt.Errorf("max_visible must be >= 1, got %d", c.MaxVisible))
	}
	if _, err := c.Language(); err != nil {
		errs = append(errs, err)
	}
	if c.Logging.Format != "" && c.Logging.Format != logging.FormatConsole && c.Logging.Format != logging.FormatJSON {
		errs = append(errs, fmt.Errorf("logging.format must be %q or %q, got %q",
			logging.FormatConsole, logging.FormatJSON, c.Logging.Format))
	}
	if _, err := record.ApplySpecs(nil, c.Columns); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Language parses Locale as a BCP 47 tag.
func (c *Config) Language() (language.Tag, error) {
	if c.Locale == "" {
		return view.DefaultLocale, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %w", ErrInvalidLocale, c.Locale, err)
	}
	return tag, nil
}

// Params converts the paging settings into pagination parameters.
func (c *Config) Params() (pagination.Params, error) {
	p := pagination.Params{
		Page:     c.Page,
		PageSize: c.PageSize,
		Query:    c.Query,
	}
	if err := p.SetSort(c.Sort); err != nil {
		return pagination.Params{}, err
	}
	return p, nil
}
