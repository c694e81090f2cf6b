package events

import "github.com/atomicstack/persona-picker/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Save(name, path string) {
	logging.Trace("store.save", map[string]interface{}{"name": name, "path": path})
}

func (StoreTracer) Load(name string) {
	logging.Trace("store.load", map[string]interface{}{"name": name})
}

func (StoreTracer) Delete(name string) {
	logging.Trace("store.delete", map[string]interface{}{"name": name})
}

func (StoreTracer) Export(name, path string) {
	logging.Trace("store.export", map[string]interface{}{"name": name, "path": path})
}
