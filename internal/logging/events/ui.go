package events

import "github.com/atomicstack/persona-picker/internal/logging"

type UITracer struct{}

var UI = UITracer{}

const (
	UIReasonEscape = "escape"
	UIReasonCtrlC  = "ctrl+c"
)

func (UITracer) Key(id, key string) {
	logging.Trace("ui.key", map[string]interface{}{"id": id, "key": key})
}

func (UITracer) Choose(id string, choice int) {
	logging.Trace("ui.choose", map[string]interface{}{"id": id, "choice": choice})
}

func (UITracer) Cancel(id, reason string) {
	logging.Trace("ui.cancel", map[string]interface{}{"id": id, "reason": reason})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}
