package events

import "github.com/atomicstack/persona-picker/internal/logging"

type SelectorTracer struct{}

type MultiTracer struct{}

type WalkTracer struct{}

var (
	Selector = SelectorTracer{}
	Multi    = MultiTracer{}
	Walk     = WalkTracer{}
)

func (SelectorTracer) Open(id string, total, shown int) {
	logging.Trace("selector.open", map[string]interface{}{"id": id, "total": total, "shown": shown})
}

func (SelectorTracer) ShowMore(id string, shown int) {
	logging.Trace("selector.show-more", map[string]interface{}{"id": id, "shown": shown})
}

func (SelectorTracer) Regenerate(id string, shown int) {
	logging.Trace("selector.regenerate", map[string]interface{}{"id": id, "shown": shown})
}

func (SelectorTracer) Select(id, item string) {
	logging.Trace("selector.select", map[string]interface{}{"id": id, "item": item})
}

func (SelectorTracer) Skip(id string) {
	logging.Trace("selector.skip", map[string]interface{}{"id": id})
}

func (SelectorTracer) Cancel(id string) {
	logging.Trace("selector.cancel", map[string]interface{}{"id": id})
}

func (SelectorTracer) Invalid(id string, choice, max int) {
	logging.Trace("selector.invalid", map[string]interface{}{"id": id, "choice": choice, "max": max})
}

func (MultiTracer) Add(id, item string, count, max int) {
	logging.Trace("multi.add", map[string]interface{}{"id": id, "item": item, "count": count, "max": max})
}

func (MultiTracer) Reject(id, item string, max int) {
	logging.Trace("multi.reject", map[string]interface{}{"id": id, "item": item, "max": max})
}

func (MultiTracer) Finish(id string, items []string) {
	logging.Trace("multi.finish", map[string]interface{}{"id": id, "items": items})
}

func (WalkTracer) Descend(id string, level int, key string) {
	logging.Trace("walk.descend", map[string]interface{}{"id": id, "level": level, "key": key})
}

func (WalkTracer) Leaf(id string, path []string, items int) {
	logging.Trace("walk.leaf", map[string]interface{}{"id": id, "path": path, "items": items})
}

func (WalkTracer) Stop(id string, path []string, reason string) {
	logging.Trace("walk.stop", map[string]interface{}{"id": id, "path": path, "reason": reason})
}

func (WalkTracer) Abort(id string, level int) {
	logging.Trace("walk.abort", map[string]interface{}{"id": id, "level": level})
}
