package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

const (
	benchResultsDir  = "benchmarks/results"
	benchProfilesDir = "benchmarks/profiles"
	benchBaseline    = benchResultsDir + "/baseline.txt"
	benchCurrent     = benchResultsDir + "/current.txt"
	benchTime        = "-benchtime=2s"
)

type BenchCommand struct{}

func (c *BenchCommand) Name() string {
	return "bench"
}

func (c *BenchCommand) Description() string {
	return "Run and manage benchmarks (run|hot|save|baseline|compare|profile)"
}

func (c *BenchCommand) Run(args []string) error {
	if len(args) == 0 {
		return c.runAll()
	}

	switch args[0] {
	case "run":
		return c.runAll()
	case "hot":
		return c.runHot()
	case "save":
		return c.runAndSave(fmt.Sprintf("%s.txt", time.Now().Format("20060102-150405")))
	case "baseline":
		return c.runAndSave("baseline.txt")
	case "compare":
		return c.compare()
	case "profile":
		return c.profile()
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func (c *BenchCommand) runAll() error {
	PrintHeader("Running all benchmarks...")
	//nolint:forbidigo
	return runCommandVerbose("go", "test", "-run=^$", "-bench=.", "-benchmem", benchTime, "./...")
}

// runHot covers the paths every API call goes through
func (c *BenchCommand) runHot() error {
	PrintHeader("Running hot path benchmarks...")

	fmt.Println("  → Engine: AutoPlay")
	if err := runCommandVerbose("go", "test", "-run=^$", "-bench=BenchmarkAutoPlay", "-benchmem", benchTime, "./benchmarks/tournament"); err != nil {
		return err
	}

	fmt.Println("  → Service: AutoPlay with sessions and events")
	return runCommandVerbose("go", "test", "-run=^$", "-bench=BenchmarkServiceAutoPlay", "-benchmem", benchTime, "./benchmarks/tournament")
}

func (c *BenchCommand) runAndSave(filename string) error {
	PrintHeader("Running benchmarks and saving results...")
	if err := os.MkdirAll(benchResultsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	path := benchResultsDir + "/" + filename
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	mw := io.MultiWriter(os.Stdout, f)

	cmd := exec.Command("go", "test", "-run=^$", "-bench=.", "-benchmem", benchTime, "./...")
	cmd.Stdout = mw
	cmd.Stderr = mw

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("benchmark execution failed: %w", err)
	}

	PrintSuccess("Results saved to %s", path)
	return nil
}

func (c *BenchCommand) compare() error {
	if _, err := os.Stat(benchBaseline); os.IsNotExist(err) {
		return fmt.Errorf("no baseline found. Run 'devtool bench baseline' first")
	}

	PrintHeader("Running benchmarks and comparing to baseline...")

	f, err := os.Create(benchCurrent)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	cmd := exec.Command("go", "test", "-run=^$", "-bench=.", "-benchmem", benchTime, "./...")
	cmd.Stdout = f
	cmd.Stderr = f

	_ = cmd.Run() // compare whatever finished, even if some benchmarks failed
	f.Close()

	if _, err := exec.LookPath("benchstat"); err == nil {
		return runCommandVerbose("benchstat", benchBaseline, benchCurrent)
	}

	PrintWarning("benchstat not installed. Install with: go install golang.org/x/perf/cmd/benchstat@latest")
	fmt.Println("\nBASELINE:")
	c.printHead(benchBaseline, 5)
	fmt.Println("\nCURRENT:")
	c.printHead(benchCurrent, 5)
	return nil
}

func (c *BenchCommand) printHead(path string, n int) {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", path, err)
		return
	}
	count := 0
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "Benchmark") {
			fmt.Println(line)
			count++
			if count >= n {
				break
			}
		}
	}
}

func (c *BenchCommand) profile() error {
	PrintHeader("Profiling the engine...")
	if err := os.MkdirAll(benchProfilesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	fmt.Println("  → CPU profile...")
	if err := runCommand("go", "test", "-run=^$", "-bench=BenchmarkAutoPlay",
		"-cpuprofile="+benchProfilesDir+"/cpu.prof", "./benchmarks/tournament"); err != nil {
		return fmt.Errorf("cpu profile failed: %w", err)
	}

	fmt.Println("  → Memory profile...")
	if err := runCommand("go", "test", "-run=^$", "-bench=BenchmarkAutoPlay", "-benchmem",
		"-memprofile="+benchProfilesDir+"/mem.prof", "./benchmarks/tournament"); err != nil {
		return fmt.Errorf("memory profile failed: %w", err)
	}

	PrintSuccess("Profiles saved to %s/", benchProfilesDir)
	fmt.Println("\nView with:")
	fmt.Printf("  go tool pprof -http=:8080 %s/cpu.prof\n", benchProfilesDir)
	fmt.Printf("  go tool pprof -http=:8080 %s/mem.prof\n", benchProfilesDir)
	return nil
}
