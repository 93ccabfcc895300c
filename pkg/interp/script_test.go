package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"hex/pkg/object"
	"hex/pkg/stdlib"
)

type scriptCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`
	Error  string `yaml:"error"`
}

func TestScripts(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "scripts.yaml"))
	if err != nil {
		t.Fatalf("reading fixtures: %v", err)
	}

	var cases []scriptCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("decoding fixtures: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			var out bytes.Buffer
			env := object.NewEnvironment()
			reg := stdlib.New(&out, strings.NewReader(""))

			_, runErr := RunProgram(tc.Source, env, reg)

			if tc.Error != "" {
				if runErr == nil {
					t.Fatalf("expected error containing %q, got none", tc.Error)
				}
				if !strings.Contains(runErr.Error(), tc.Error) {
					t.Fatalf("error %q does not contain %q", runErr.Error(), tc.Error)
				}
				return
			}

			if runErr != nil {
				t.Fatalf("unexpected error: %v", runErr)
			}
			if out.String() != tc.Output {
				t.Errorf("output mismatch.\nexpected: %q\ngot:      %q", tc.Output, out.String())
			}
		})
	}
}
