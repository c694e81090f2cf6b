package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/persona-picker/internal/app"
	"github.com/atomicstack/persona-picker/internal/config"
	"github.com/atomicstack/persona-picker/internal/logging"
	"github.com/atomicstack/persona-picker/internal/logging/events"
)

func main() {
	args := os.Args[1:]
	root := newRootCommand(args, os.Environ(), app.Run)
	root.SetArgs(args)
	err := root.Execute()
	code := exitCode(err)
	switch code {
	case 0:
	case 2:
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
	default:
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	events.App.Exit(code, err)
	logging.Sync()
	os.Exit(code)
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails(cfg.App.UI)
	return payload
}

type ttyDetails struct {
	// TUI is the prompter choice the configured UI mode makes for stdin
	// and stdout.
	TUI    bool             `json:"tui"`
	Probes []ttyProbeResult `json:"probes"`
}

type ttyProbeResult struct {
	Name string `json:"name"`
	app.Terminal
}

// collectTTYDetails probes the standard descriptors with the same checks the
// app uses to pick its prompter.
func collectTTYDetails(mode string) ttyDetails {
	streams := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	probes := make([]ttyProbeResult, 0, len(streams))
	for _, s := range streams {
		probes = append(probes, ttyProbeResult{Name: s.name, Terminal: app.ProbeTerminal(s.file)})
	}
	return ttyDetails{TUI: app.UsesTUI(mode, os.Stdin, os.Stdout), Probes: probes}
}
