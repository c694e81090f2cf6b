package events

import "github.com/atomicstack/persona-picker/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Step(name string, outcome string) {
	logging.Trace("app.step", map[string]interface{}{"step": name, "outcome": outcome})
}

func (AppTracer) Command(name string, args []string) {
	logging.Trace("app.command", map[string]interface{}{"command": name, "args": args})
}

func (AppTracer) Exit(code int, err error) {
	payload := map[string]interface{}{"code": code}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}
