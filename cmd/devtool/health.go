package main

import (
	"encoding/json"
	"fmt"
	"time"
)

const slowResponse = time.Second

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Probe liveness, readiness and version of a running server"
}

func (c *HealthCheckCommand) Run(args []string) error {
	client := newAPIClient()
	PrintHeader(fmt.Sprintf("Health Check (%s)", client.baseURL))

	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		body, err := client.get(path)
		duration := time.Since(start)
		if err != nil {
			PrintError("%s failed: %v %s", path, err, body)
			return err
		}
		if duration > slowResponse {
			PrintWarning("%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s ok (%v)", path, duration)
		}
	}

	body, err := client.get("/version")
	if err != nil {
		PrintWarning("Version unavailable: %v", err)
		return nil
	}
	var info struct {
		Version   string `json:"version"`
		GitCommit string `json:"git_commit"`
		BuildTime string `json:"build_time"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		PrintWarning("Unexpected version payload: %v", err)
		return nil
	}
	PrintInfo("Version %s (commit %s, built %s)", info.Version, info.GitCommit, info.BuildTime)
	return nil
}

// checkHealth is the quiet liveness probe used by doctor
func checkHealth() error {
	_, err := newAPIClient().get("/healthz")
	return err
}
