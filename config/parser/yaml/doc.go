// Package yaml implements config.Parser for YAML documents using
// github.com/goccy/go-yaml.
//
// A colon path selects the mapping to decode, so one file can hold the
// bootstrap for several services:
//
//	services:
//	  worker:
//	    settings:
//	      catalog_dir: /run/worker/catalog
//	      settings_module: /etc/worker/settings.yaml#defaults
//
//	boot := &config.Bootstrap{}
//	err := yaml.NewParser().Parse(data, boot, "services:worker:settings")
//
// The path is translated to a goccy/go-yaml path ("$.services.worker.settings").
// An empty path decodes the whole document. Empty input fails with
// ErrEmptyData and a missing key with ErrPathNotFound.
package yaml
