package events

import "github.com/atomicstack/persona-picker/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Tree(name, path string) {
	logging.Trace("catalog.tree", map[string]interface{}{"name": name, "path": path})
}

func (CatalogTracer) List(path string, count int) {
	logging.Trace("catalog.list", map[string]interface{}{"path": path, "count": count})
}

func (CatalogTracer) Counts(nationalities int, path string) {
	logging.Trace("catalog.counts", map[string]interface{}{"nationalities": nationalities, "path": path})
}
