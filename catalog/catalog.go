// Package catalog builds a read-only settings mapping from a directory in
// which every file is one setting: the file name is the setting name and the
// file content is a literal.
package catalog

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"reflect"
	"slices"

	"github.com/0xalexb/settingspy/config"
	"github.com/0xalexb/settingspy/config/fetcher/file"
	"github.com/0xalexb/settingspy/literal"

	"go.uber.org/multierr"
)

// ErrKeyMissing is returned by Get for names the catalog does not hold.
var ErrKeyMissing = errors.New("no such catalog entry")

// ErrEntryIsDirectory is returned when the catalog directory contains a subdirectory.
var ErrEntryIsDirectory = errors.New("catalog entry is a directory")

// Catalog is an immutable name to value mapping. The zero value and a nil
// *Catalog are empty catalogs.
type Catalog struct {
	dir     string
	entries map[string]any
}

type options struct {
	mode   literal.Mode
	logger *slog.Logger
}

// Option configures New.
type Option func(*options)

// WithMode selects the literal grammar for entry contents. The default is literal.Strict.
func WithMode(mode literal.Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithLogger sets the logger used while loading. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New reads every entry of dir and parses its content.
//
// An empty dir yields an empty catalog. A dir that cannot be listed yields a
// *config.ConfigurationError. If any entry is a directory, cannot be read or
// does not parse, New fails and reports every such entry; a partial catalog
// is never returned.
func New(dir string, opts ...Option) (*Catalog, error) {
	o := options{mode: literal.Strict, logger: nil}

	for _, apply := range opts {
		apply(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	catalog := &Catalog{dir: dir, entries: map[string]any{}}

	if dir == "" {
		return catalog, nil
	}

	entries, err := file.ReadDir(dir)
	if err != nil {
		return nil, config.NewConfigurationError("open catalog", dir, err)
	}

	var errs error

	for _, entry := range entries {
		value, err := load(entry, o.mode)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("entry %q: %w", entry.Name, err))

			continue
		}

		catalog.entries[entry.Name] = value

		logger.Debug("catalog entry loaded",
			slog.String("name", entry.Name),
			slog.String("type", fmt.Sprintf("%T", value)),
		)
	}

	if errs != nil {
		logger.Error("catalog rejected",
			slog.String("dir", dir),
			slog.Int("failed", len(multierr.Errors(errs))),
		)

		return nil, fmt.Errorf("building catalog %q: %w", dir, errs)
	}

	logger.Info("catalog loaded", slog.String("dir", dir), slog.Int("entries", len(catalog.entries)))

	return catalog, nil
}

func load(entry file.Entry, mode literal.Mode) (any, error) {
	if entry.IsDir {
		return nil, config.NewConfigurationError("read catalog entry", entry.Path, ErrEntryIsDirectory)
	}

	fetcher, err := file.Open(entry.Path)
	if err != nil {
		return nil, config.NewConfigurationError("read catalog entry", entry.Path, err)
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return nil, config.NewConfigurationError("read catalog entry", entry.Path, err)
	}

	return literal.Parse(string(data), mode)
}

func (c *Catalog) m() map[string]any {
	if c == nil {
		return nil
	}

	return c.entries
}

// Dir returns the directory the catalog was built from.
func (c *Catalog) Dir() string {
	if c == nil {
		return ""
	}

	return c.dir
}

// Get returns the value for name, or an error matching ErrKeyMissing.
func (c *Catalog) Get(name string) (any, error) {
	value, ok := c.m()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyMissing, name)
	}

	return value, nil
}

// GetOr returns the value for name, or def when it is absent.
func (c *Catalog) GetOr(name string, def any) any {
	value, ok := c.m()[name]
	if !ok {
		return def
	}

	return value
}

// TryGet returns the value for name and whether it was present.
func (c *Catalog) TryGet(name string) (any, bool) {
	value, ok := c.m()[name]

	return value, ok
}

// Contains reports whether name is in the catalog.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.m()[name]

	return ok
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.m())
}

// Names returns the entry names in sorted order.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.m()))
}

// All iterates over the entries in name order.
func (c *Catalog) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		entries := c.m()

		for _, name := range c.Names() {
			if !yield(name, entries[name]) {
				return
			}
		}
	}
}

// Map returns a copy of the entries.
func (c *Catalog) Map() map[string]any {
	return maps.Clone(c.m())
}

// Equal reports whether both catalogs hold the same names with deeply equal values.
func (c *Catalog) Equal(other *Catalog) bool {
	if c.Len() == 0 && other.Len() == 0 {
		return true
	}

	return reflect.DeepEqual(c.m(), other.m())
}
