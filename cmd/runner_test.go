package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ospreyhr/attriview/internal/shared"
	tu "github.com/ospreyhr/attriview/internal/testing"
	"github.com/urfave/cli/v3"
)

func newTestRunner(t *testing.T, source *tu.MockSource) (*Runner, *bytes.Buffer) {
	t.Helper()
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Config: shared.DefaultConfig(),
		Source: source,
		Logger: shared.NewLogger(output),
		Output: output,
	})
	return runner, output
}

func runCommand(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	app := &cli.Command{Name: "attriview", Commands: r.register()}
	return app.Run(context.Background(), append([]string{"attriview"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}
			source := &tu.MockSource{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Logger:     logger,
				Output:     output,
				HTTPClient: httpClient,
				Source:     source,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
			if runner.source != source {
				t.Error("expected source to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		result := output.String()
		if !strings.Contains(result, `"key": "value"`) {
			t.Errorf("expected formatted JSON, got %s", result)
		}
		if !strings.HasSuffix(result, "\n") {
			t.Error("expected output to end with newline")
		}

		t.Run("write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})
			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err == nil {
				t.Error("expected write error")
			}
		})
	})
}

func TestFetch(t *testing.T) {
	t.Run("plain summary", func(t *testing.T) {
		source := &tu.MockSource{}
		runner, output := newTestRunner(t, source)

		if err := runCommand(t, runner, "fetch"); err != nil {
			t.Fatalf("fetch failed: %v", err)
		}

		out := output.String()
		if !strings.Contains(out, "Rows: 4") {
			t.Errorf("expected row count in summary, got: %s", out)
		}
		if source.LastLimit != 500 {
			t.Errorf("expected default limit 500, got %d", source.LastLimit)
		}
	})

	t.Run("json summary", func(t *testing.T) {
		runner, output := newTestRunner(t, &tu.MockSource{})

		if err := runCommand(t, runner, "fetch", "--json"); err != nil {
			t.Fatalf("fetch failed: %v", err)
		}

		var summary struct {
			Rows    int      `json:"rows"`
			Columns []string `json:"columns"`
		}
		start := strings.Index(output.String(), "{")
		if start < 0 {
			t.Fatalf("no JSON in output: %s", output.String())
		}
		if err := json.Unmarshal([]byte(output.String()[start:]), &summary); err != nil {
			t.Fatalf("invalid JSON output: %v", err)
		}
		if summary.Rows != 4 || len(summary.Columns) != 6 {
			t.Errorf("unexpected summary: %+v", summary)
		}
	})

	t.Run("load failure", func(t *testing.T) {
		runner, _ := newTestRunner(t, &tu.MockSource{Err: errors.New("boom")})

		err := runCommand(t, runner, "fetch")
		if !errors.Is(err, shared.ErrFetchFailed) {
			t.Errorf("expected ErrFetchFailed, got %v", err)
		}
	})
}

func TestStats(t *testing.T) {
	t.Run("plain sections", func(t *testing.T) {
		runner, output := newTestRunner(t, &tu.MockSource{})

		if err := runCommand(t, runner, "stats"); err != nil {
			t.Fatalf("stats failed: %v", err)
		}

		out := output.String()
		for _, want := range []string{"Histogram by age", "Unit Frequency", "Mean attrition rate by hometown", "20-29", "IT"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in output, got: %s", want, out)
			}
		}
	})

	t.Run("unit filter narrows aggregation", func(t *testing.T) {
		runner, output := newTestRunner(t, &tu.MockSource{})

		if err := runCommand(t, runner, "stats", "--unit", "HR", "--json"); err != nil {
			t.Fatalf("stats failed: %v", err)
		}

		var got struct {
			Rows int `json:"rows"`
		}
		start := strings.Index(output.String(), "{")
		if err := json.Unmarshal([]byte(output.String()[start:]), &got); err != nil {
			t.Fatalf("invalid JSON output: %v", err)
		}
		if got.Rows != 1 {
			t.Errorf("expected 1 HR row, got %d", got.Rows)
		}
	})
}

func TestExport(t *testing.T) {
	t.Run("writes filtered csv", func(t *testing.T) {
		runner, output := newTestRunner(t, &tu.MockSource{})
		path := filepath.Join(t.TempDir(), "it.csv")

		if err := runCommand(t, runner, "export", "--output", path, "--unit", "IT"); err != nil {
			t.Fatalf("export failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("export file should exist: %v", err)
		}
		if !strings.Contains(string(data), "EID_100") || strings.Contains(string(data), "EID_200") {
			t.Errorf("unexpected export content: %s", data)
		}
		if !strings.Contains(output.String(), "Exported 2 rows") {
			t.Errorf("expected confirmation, got: %s", output.String())
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		runner, _ := newTestRunner(t, &tu.MockSource{})
		path := filepath.Join(t.TempDir(), "out.bin")

		err := runCommand(t, runner, "export", "--output", path, "--format", "parquet")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})
}

func TestSetup(t *testing.T) {
	runner, output := newTestRunner(t, &tu.MockSource{})
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := runCommand(t, runner, "setup", "--config", path); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file should exist: %v", err)
	}
	if !strings.Contains(output.String(), "Config written") {
		t.Errorf("expected confirmation, got: %s", output.String())
	}

	if err := runCommand(t, runner, "setup", "--config", path); err == nil {
		t.Error("expected error when config already exists")
	}
}
