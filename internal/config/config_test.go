package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if errs := Validate(cfg); len(errs) != 0 {
		t.Errorf("expected defaults to be valid, got %v", errs)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		EnvInterpreter: "/opt/node20/bin/node",
		EnvFormat:      "JSON",
		EnvColor:       "always",
		EnvDebug:       "true",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Config{Interpreter: "/opt/node20/bin/node", Format: FormatJSON, Color: ColorAlways, Debug: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEnv_NoColor(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{EnvNoColor: "1"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Color != ColorNever {
		t.Errorf("expected color=never, got %q", cfg.Color)
	}

	// an explicit NODEDIAG_COLOR wins over NO_COLOR
	cfg, err = FromEnv(envMap(map[string]string{EnvNoColor: "1", EnvColor: "always"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Color != ColorAlways {
		t.Errorf("expected color=always, got %q", cfg.Color)
	}
}

func TestFromEnv_EmptyValuesIgnored(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{EnvInterpreter: "", EnvNoColor: ""}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Interpreter != "node" || cfg.Color != ColorAuto {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestFromEnv_BadDebug(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{EnvDebug: "maybe"}))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), EnvDebug) {
		t.Errorf("expected error to name %s, got %v", EnvDebug, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		fields []string
	}{
		{"valid", Default(), nil},
		{"no interpreter", Config{Format: FormatText, Color: ColorAuto}, []string{"interpreter"}},
		{"bad format", Config{Interpreter: "node", Format: "yaml", Color: ColorAuto}, []string{"format"}},
		{"everything wrong", Config{Format: "xml", Color: "rainbow"}, []string{"interpreter", "format", "color"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.cfg)
			var got []string
			for _, e := range errs {
				got = append(got, e.Field)
			}
			if diff := cmp.Diff(tt.fields, got); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	e := ValidationError{Field: "format", Message: "is required"}
	if e.Error() != "format: is required" {
		t.Errorf("unexpected: %q", e.Error())
	}
}
