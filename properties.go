package matprop

import (
	"sync"
)

// PropertyKey identifies a named shader property. Keys are resolved once from
// their names and compared by value afterwards.
type PropertyKey int32

type propertyTable struct {
	mu    sync.RWMutex
	ids   map[string]PropertyKey
	names []string
}

var properties = &propertyTable{
	ids: make(map[string]PropertyKey),
}

// Cached keys for the properties this package works with by default.
var (
	PropColor    = PropertyToID("_BaseColor")
	PropEmissive = PropertyToID("_EmissionColor")
)

// PropertyToID returns the key for a shader property name, assigning a new one
// the first time a name is seen. Keys stay valid for the life of the process.
func PropertyToID(name string) PropertyKey {
	properties.mu.RLock()
	id, ok := properties.ids[name]
	properties.mu.RUnlock()
	if ok {
		return id
	}

	properties.mu.Lock()
	defer properties.mu.Unlock()
	if id, ok := properties.ids[name]; ok {
		return id
	}
	id = PropertyKey(len(properties.names))
	properties.ids[name] = id
	properties.names = append(properties.names, name)
	return id
}

// PropertyName is the reverse of PropertyToID.
func PropertyName(key PropertyKey) (string, bool) {
	properties.mu.RLock()
	defer properties.mu.RUnlock()
	if key < 0 || int(key) >= len(properties.names) {
		return "", false
	}
	return properties.names[key], true
}

func (k PropertyKey) String() string {
	if name, ok := PropertyName(k); ok {
		return name
	}
	return "<unknown property>"
}
