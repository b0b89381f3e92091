//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedCurriculaPath holds the path to a shared curricula binary built once for all tests.
	sharedCurriculaPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getCurriculaBinary returns the path to the curricula binary, building it once if needed.
func getCurriculaBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "curricula-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		curriculaPath := filepath.Join(tempDir, "curricula")
		buildCmd := exec.Command("go", "build", "-o", curriculaPath, "./cmd/curricula")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build curricula: %v", err))
		}

		sharedCurriculaPath = curriculaPath
	})

	return sharedCurriculaPath
}

// writeSampleCatalogue writes a small module catalogue JSON file for CLI runs
// and returns its path.
func writeSampleCatalogue(dir string) (string, error) {
	catalogue := `[
  {"id": "M1", "title": "Green Software Development", "description": "Energy efficient coding and carbon aware software practices", "ects": 5, "eqf_level": 6, "topics": ["Green Software Development"], "role_relevance": {"DAN": 60, "DSL": 80}},
  {"id": "M2", "title": "Carbon Footprint Measurement", "description": "Measuring emissions with ghg protocol and carbon accounting", "ects": 10, "eqf_level": 6, "topics": ["Carbon Footprint Measurement"], "role_relevance": {"DAN": 75}},
  {"id": "M3", "title": "Data Center Sustainability", "description": "Cooling, power usage effectiveness and renewable energy for data centers", "ects": 5, "eqf_level": 7, "topics": ["Data Center Sustainability"], "role_relevance": {"DAN": 50}},
  {"id": "M4", "title": "Digital Circular Economy", "description": "Device lifecycle, e-waste and repairability", "ects": 5, "eqf_level": 6, "topics": ["Digital Circular Economy"], "role_relevance": {"DAN": 40}}
]`
	path := filepath.Join(dir, "catalogue.json")
	if err := os.WriteFile(path, []byte(catalogue), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// runCurriculaCommand runs the curricula binary with the given arguments from
// the project root and reports failure output through t.
func runCurriculaCommand(t *testing.T, args ...string) error {
	t.Helper()
	curriculaPath := getCurriculaBinary()
	cmd := exec.Command(curriculaPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
