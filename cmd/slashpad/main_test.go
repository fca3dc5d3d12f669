package main

import (
	"testing"

	"github.com/iw2rmb/slashpad"
	"github.com/iw2rmb/slashpad/internal/app"
	"github.com/iw2rmb/slashpad/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			OptionsPath: "menu.toml",
			Trigger:     '/',
			Metrics:     app.MetricsFace,
			FontFamily:  "go",
			FontSize:    12,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"options": "menu.toml",
			"trigger": "/",
			"metrics": "face",
		},
		Args: []string{"-options", "menu.toml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]any)
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["options"] != "menu.toml" {
		t.Fatalf("expected options flag %q, got %v", "menu.toml", flagsValue["options"])
	}
	if flagsValue["metrics"] != "face" {
		t.Fatalf("expected metrics face, got %v", flagsValue["metrics"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["version"] != slashpad.Version() {
		t.Fatalf("expected version %q, got %v", slashpad.Version(), payload["version"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
