package settings

import (
	"fmt"

	"github.com/0xalexb/settingspy/module"
)

// Layer names one of the four setting sources, in priority order.
type Layer int

const (
	// LayerRuntime holds values assigned with Set. It always wins.
	LayerRuntime Layer = iota
	// LayerCatalog holds values read from the catalog directory.
	LayerCatalog
	// LayerModule holds attributes of the settings module.
	LayerModule
	// LayerFallback holds values registered with SetFallback.
	LayerFallback
)

func (l Layer) String() string {
	switch l {
	case LayerRuntime:
		return "runtime"
	case LayerCatalog:
		return "catalog"
	case LayerModule:
		return "module"
	case LayerFallback:
		return "fallback"
	default:
		return fmt.Sprintf("Layer(%d)", int(l))
	}
}

// Provider is a single setting source.
type Provider interface {
	// TryGet returns the value for name and whether the source has it.
	TryGet(name string) (any, bool)
}

type mapLayer map[string]any

func (m mapLayer) TryGet(name string) (any, bool) {
	value, ok := m[name]

	return value, ok
}

type moduleLayer struct {
	mod module.Module
}

func (m moduleLayer) TryGet(name string) (any, bool) {
	if m.mod == nil {
		return nil, false
	}

	return m.mod.Lookup(name)
}

type chainEntry struct {
	layer    Layer
	provider Provider
}
