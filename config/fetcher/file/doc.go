// Package file reads settings data from the filesystem.
//
// Fetcher implements config.DataFetcher for a single file. The file is read
// once, when the Fetcher is opened, and every Fetch returns a copy of those
// bytes. Catalog entries and settings-module documents are both read this way:
//
//	fetcher, err := file.Open("/run/catalog/workers")
//	data, err := fetcher.Fetch()
//
// NewFetcher wraps Open as an Fx-friendly constructor.
//
// ReadDir lists a catalog directory without recursing. Each Entry carries the
// entry name (the setting name), its full path, and whether it is a directory;
// symbolic links count as directories when they point to one.
//
//	entries, err := file.ReadDir("/run/catalog")
//
// Opening a directory fails with ErrPathIsDirectory; listing a regular file
// fails with ErrNotDirectory. Other errors wrap the underlying *fs.PathError,
// so errors.Is(err, fs.ErrNotExist) works for missing paths.
package file
