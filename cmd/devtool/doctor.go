package main

import (
	"fmt"
	"os/exec"
	"strings"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (toolchain, dev tools, running server)"
}

// devTool is an executable the dev workflow relies on
type devTool struct {
	name     string
	args     []string
	required bool
	install  string
}

var devTools = []devTool{
	{name: "go", args: []string{"version"}, required: true, install: "https://go.dev/dl/"},
	{name: "golangci-lint", args: []string{"--version"}, install: "go install github.com/golangci/golangci-lint/cmd/golangci-lint"},
	{name: "mockery", args: []string{"--version"}, install: "go install github.com/vektra/mockery/v2"},
	{name: "benchstat", install: "go install golang.org/x/perf/cmd/benchstat"},
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	hasError := false
	for _, tool := range devTools {
		if _, err := exec.LookPath(tool.name); err == nil {
			version := "version unknown"
			if tool.args != nil {
				if out, err := getCommandOutput(tool.name, tool.args...); err == nil {
					version = firstLine(out)
				}
			}
			PrintSuccess("%s installed: %s", tool.name, version)
			continue
		}

		switch {
		case tool.required:
			PrintError("%s not found. Install: %s", tool.name, tool.install)
			hasError = true
		default:
			PrintWarning("%s not found (optional). Install: %s", tool.name, tool.install)
		}
	}

	if err := checkHealth(); err != nil {
		PrintWarning("Server not reachable (%v); start it with 'go run ./cmd/app'", err)
	} else {
		PrintSuccess("Server healthy")
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
