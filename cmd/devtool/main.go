// Command devtool bundles the chores around the tournament server: running
// benchmarks, gating coverage, probing a running instance and tailing its
// event stream.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := NewRegistry()
	registry.Register(&BenchCommand{})
	registry.Register(&CheckCoverageCommand{})
	registry.Register(&DoctorCommand{})
	registry.Register(&HealthCheckCommand{})
	registry.Register(&WatchCommand{})

	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	if err := registry.Run(os.Args[1], os.Args[2:]); err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}
}
