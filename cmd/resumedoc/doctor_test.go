package main

// Notes:
// - Tests use black-box approach: testing through runDoctorCmd() observable outputs
// - The environment is injected through Environment.Getenv, so tests run in parallel
// - Chrome detection depends on system state: we assert on how its absence is
//   classified (warning for canvas, error for chrome), not on whether it is found
// - Internal functions (isContainer, checkChrome, checkSystem) are verified
//   through command output

import (
	"bytes"
	"encoding/json"
	"os"
	"runtime"
	"strings"
	"testing"
)

func runDoctorJSON(t *testing.T, vars map[string]string) (*doctorResult, int) {
	t.Helper()
	env, stdout, _ := testEnv(vars)

	code := runDoctorCmd([]string{"--json"}, env)

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput was: %s", err, stdout.String())
	}
	return &result, code
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_JSONOutput - Verifies JSON output format and structure
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_JSONOutput(t *testing.T) {
	t.Parallel()

	result, exitCode := runDoctorJSON(t, nil)

	validStatuses := map[string]bool{"ready": true, "warnings": true, "errors": true}
	if !validStatuses[result.Status] {
		t.Errorf("Invalid status %q, expected ready/warnings/errors", result.Status)
	}
	if result.Status == "errors" && exitCode != ExitGeneral {
		t.Errorf("Expected exit code %d for errors status, got %d", ExitGeneral, exitCode)
	}
	if result.Status != "errors" && exitCode != ExitSuccess {
		t.Errorf("Expected exit code %d for non-error status, got %d", ExitSuccess, exitCode)
	}
	if result.Env.OS != runtime.GOOS || result.Env.Arch != runtime.GOARCH {
		t.Errorf("platform = %s/%s, want %s/%s", result.Env.OS, result.Env.Arch, runtime.GOOS, runtime.GOARCH)
	}
	if result.Engine.Name != "canvas" || result.Chrome.Required {
		t.Errorf("Engine = %+v, Chrome.Required = %v, want canvas without chrome", result.Engine, result.Chrome.Required)
	}
	if len(result.Engine.Styles) == 0 {
		t.Error("Engine.Styles should list the embedded styles")
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_ChromeClassification - Missing browser severity
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_ChromeClassification(t *testing.T) {
	t.Parallel()

	missing := "/nonexistent/chrome-for-doctor-test"

	t.Run("canvas engine warns", func(t *testing.T) {
		t.Parallel()

		result, _ := runDoctorJSON(t, map[string]string{"ROD_BROWSER_BIN": missing})

		if result.Chrome.Found {
			t.Fatal("Chrome.Found = true for a missing binary")
		}
		for _, e := range result.Errors {
			if strings.Contains(e, missing) {
				t.Errorf("missing Chrome reported as error with canvas engine: %q", e)
			}
		}
		if !containsSubstring(result.Warnings, missing) {
			t.Errorf("Warnings = %v, want one naming %s", result.Warnings, missing)
		}
	})

	t.Run("chrome engine fails", func(t *testing.T) {
		t.Parallel()

		result, code := runDoctorJSON(t, map[string]string{
			"ROD_BROWSER_BIN":  missing,
			"RESUMEDOC_ENGINE": "chrome",
		})

		if !result.Chrome.Required || result.Status != "errors" || code != ExitGeneral {
			t.Errorf("Required = %v, Status = %q, code = %d", result.Chrome.Required, result.Status, code)
		}
		if !containsSubstring(result.Errors, missing) {
			t.Errorf("Errors = %v, want one naming %s", result.Errors, missing)
		}
	})

	t.Run("unknown engine is an error", func(t *testing.T) {
		t.Parallel()

		result, _ := runDoctorJSON(t, map[string]string{"RESUMEDOC_ENGINE": "wkhtmltopdf"})

		if result.Status != "errors" {
			t.Errorf("Status = %q, want errors", result.Status)
		}
	})
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_HumanOutput - Verifies human-readable output format
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_HumanOutput(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(nil)

	runDoctorCmd([]string{}, env)

	output := stdout.String()
	for _, section := range []string{"resumedoc doctor", "Engine", "Chrome/Chromium", "Environment", "System", "Status:"} {
		if !strings.Contains(output, section) {
			t.Errorf("Output should contain section %q", section)
		}
	}
	if platform := runtime.GOOS + "/" + runtime.GOARCH; !strings.Contains(output, platform) {
		t.Errorf("Output should contain platform %q", platform)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_ContainerDetection - Verifies container environment detection
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_ContainerDetection(t *testing.T) {
	t.Parallel()

	_, dockerenv := os.Stat("/.dockerenv")
	inDocker := dockerenv == nil

	tests := []struct {
		name     string
		vars     map[string]string
		wantHint string
		docker   bool // hint depends on /.dockerenv being absent
	}{
		{"explicit override wins", map[string]string{"RESUMEDOC_CONTAINER": "1", "KUBERNETES_SERVICE_HOST": "10.0.0.1"}, "RESUMEDOC_CONTAINER=1", false},
		{"kubernetes environment", map[string]string{"KUBERNETES_SERVICE_HOST": "10.0.0.1"}, "KUBERNETES_SERVICE_HOST", true},
		{"podman container", map[string]string{"container": "podman"}, "container=podman", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.docker && inDocker {
				t.Skip("/.dockerenv takes priority in this environment")
			}

			result, _ := runDoctorJSON(t, tt.vars)

			if !result.Env.Container || result.Env.ContainerHint != tt.wantHint {
				t.Errorf("Container = %v, hint = %q, want hint %q", result.Env.Container, result.Env.ContainerHint, tt.wantHint)
			}
		})
	}
}

func TestRunDoctorCmd_SandboxWarningOnlyForChrome(t *testing.T) {
	t.Parallel()

	result, _ := runDoctorJSON(t, map[string]string{"CI": "true"})

	if !result.Env.CI {
		t.Fatal("CI not detected")
	}
	if containsSubstring(result.Warnings, "ROD_NO_SANDBOX") {
		t.Errorf("sandbox warning with canvas engine: %v", result.Warnings)
	}
}

func TestPrintDoctorResult_Statuses(t *testing.T) {
	t.Parallel()

	for status, want := range map[string]string{
		"ready":    "Status: Ready to convert",
		"warnings": "Status: Ready with warnings",
		"errors":   "Status: Not ready",
	} {
		var buf bytes.Buffer
		printDoctorResult(&buf, &doctorResult{Status: status, Engine: engineInfo{Name: "canvas"}})
		if !strings.Contains(buf.String(), want) {
			t.Errorf("status %s: output missing %q", status, want)
		}
	}
}
