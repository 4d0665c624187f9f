package Config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repobench.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := NewLoader().Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	d := Default()
	if c.Records != d.Records || c.MaxParallel != d.MaxParallel || c.Output != d.Output || !slices.Equal(c.Strategies, d.Strategies) {
		t.Errorf("loaded %+v, want %+v", c, d)
	}
	if !c.Interactive() {
		t.Error("config without records isn't interactive")
	}
}

func TestLoad_Priority(t *testing.T) {
	path := writeFile(t, `
records: 100
max_parallel: 8
strategies: [Locked, Concurrent, BTree]
log:
  level: debug
  format: json
metrics:
  push_url: http://localhost:9091
`)
	t.Setenv("REPOBENCH_MAX_PARALLEL", "16")
	t.Setenv("REPOBENCH_LOG__FORMAT", "text")
	c, err := NewLoader(WithConfigFile(path)).Load(map[string]any{"records": int64(50), "log.level": "warn"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Records != 50 {
		t.Errorf("records is %d, want the flag value 50", c.Records)
	}
	if c.MaxParallel != 16 {
		t.Errorf("max_parallel is %d, want the env value 16", c.MaxParallel)
	}
	if c.Log.Format != "text" || c.Log.Level != "warn" {
		t.Errorf("log is %+v, want text/warn", c.Log)
	}
	if !slices.Equal(c.Strategies, []string{"Locked", "Concurrent", "BTree"}) {
		t.Errorf("strategies are %v", c.Strategies)
	}
	if c.Metrics.PushURL != "http://localhost:9091" || c.Metrics.Job != "repobench" {
		t.Errorf("metrics are %+v", c.Metrics)
	}
	if c.Interactive() {
		t.Error("config with records is interactive")
	}
}

func TestLoad_EnvList(t *testing.T) {
	t.Setenv("REPOBENCH_STRATEGIES", "Concurrent,Sharded")
	c, err := NewLoader().Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(c.Strategies, []string{"Concurrent", "Sharded"}) {
		t.Errorf("strategies are %v", c.Strategies)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]any{
		"records":     {"records": int64(-5)},
		"parallel":    {"max_parallel": 0},
		"strategy":    {"strategies": []string{"Nope"}},
		"output":      {"output": "xml"},
		"no strategy": {"strategies": []string{}},
	}
	for name, flags := range cases {
		if _, err := NewLoader().Load(flags); err == nil {
			t.Errorf("%s: invalid config loaded", name)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader(WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))).Load(nil)
	if err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("missing file returned %v", err)
	}
}

func TestMapProvider_Unflatten(t *testing.T) {
	m, _ := mapProvider{"log.level": "debug", "records": 3}.Read()
	log, ok := m["log"].(map[string]any)
	if !ok || log["level"] != "debug" || m["records"] != 3 {
		t.Errorf("unexpected map %v", m)
	}
}
