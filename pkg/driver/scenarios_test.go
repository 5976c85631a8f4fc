package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/snewcomer/tree-walk-1/pkg/interpreter"
)

type scenario struct {
	Name   string   `yaml:"name"`
	Steps  []string `yaml:"steps"`
	Stdout string   `yaml:"stdout"`
	Errors []string `yaml:"errors"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	file, err := os.Open(filepath.Join("testdata", "scenarios.yml"))
	if err != nil {
		t.Fatalf("open scenarios: %v", err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	var scenarios []scenario
	if err := decoder.Decode(&scenarios); err != nil {
		t.Fatalf("decode scenarios: %v", err)
	}
	if len(scenarios) == 0 {
		t.Fatalf("no scenarios found")
	}
	return scenarios
}

func TestScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			var out bytes.Buffer
			session := NewSession(interpreter.New(interpreter.WithOutput(&out)), 8)
			var errs []string
			for _, step := range sc.Steps {
				if err := session.Run(step); err != nil {
					errs = append(errs, err.Error())
				}
			}
			if got := out.String(); got != sc.Stdout {
				t.Fatalf("stdout mismatch:\nexpected %q\ngot      %q", sc.Stdout, got)
			}
			if len(errs) != len(sc.Errors) {
				t.Fatalf("expected errors %q, got %q", sc.Errors, errs)
			}
			for i := range errs {
				if errs[i] != sc.Errors[i] {
					t.Fatalf("error %d: expected %q, got %q", i, sc.Errors[i], errs[i])
				}
			}
		})
	}
}
