package estimate

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/etnz/stockview/chart"
	"github.com/google/go-cmp/cmp"
)

// writeScript writes a shell script in a temporary directory.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "script.sh")
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	script := writeScript(t, `
out="${1%.*}_with_predictions.txt"
printf 'timestamp,price\n1700000000,10.00\n1700086400,10.50\n' > "$out"
echo "Analysis for $2"
echo "Estimate: Yes"
echo "Output saved to: $out"
`)
	data := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(data, []byte("timestamp,price\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := &Launcher{Interpreter: "sh", Script: script, Args: []string{"VUG"}}
	res, err := l.Run(context.Background(), data)
	if err != nil {
		t.Fatalf("Run() unexpected error = %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if !strings.Contains(res.Output, "Analysis for VUG") {
		t.Errorf("Output = %q, want the script output", res.Output)
	}
	if want := strings.TrimSuffix(data, ".csv") + "_with_predictions.txt"; res.EstimateFile != want {
		t.Errorf("EstimateFile = %q, want %q", res.EstimateFile, want)
	}

	got, err := res.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	want := chart.Series{{X: 1700000000, Y: 10}, {X: 1700086400, Y: 10.5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_ExitCode(t *testing.T) {
	script := writeScript(t, `
echo "Usage: script.sh <data_file_path> <ticker>"
exit 3
`)
	l := &Launcher{Interpreter: "sh", Script: script}
	res, err := l.Run(context.Background(), "data.csv")
	if err != nil {
		t.Fatalf("Run() unexpected error = %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if !strings.HasPrefix(res.Output, "Usage:") {
		t.Errorf("Output = %q, want the usage line", res.Output)
	}
	if series, err := res.Load(); series != nil || err != nil {
		t.Errorf("Load() = %v, %v, want nothing", series, err)
	}
}

func TestRun_ArgumentsAreNotSplit(t *testing.T) {
	script := writeScript(t, `for a in "$@"; do echo "[$a]"; done`)
	l := &Launcher{Interpreter: "sh", Script: script, Args: []string{`a "quoted" arg`, "b"}}
	res, err := l.Run(context.Background(), "my data.csv")
	if err != nil {
		t.Fatalf("Run() unexpected error = %v", err)
	}
	want := "[my data.csv]\n[a \"quoted\" arg]\n[b]\n"
	if res.Output != want {
		t.Errorf("Output = %q, want %q", res.Output, want)
	}
}

func TestRun_Errors(t *testing.T) {
	if _, err := (&Launcher{}).Run(context.Background(), "data.csv"); err == nil {
		t.Errorf("Run() without script error = nil, want an error")
	}
	l := &Launcher{Interpreter: "/no/such/interpreter", Script: "script.py"}
	if _, err := l.Run(context.Background(), "data.csv"); err == nil {
		t.Errorf("Run() with a missing interpreter error = nil, want an error")
	}
}

func TestParseOutput(t *testing.T) {
	tests := []struct {
		name, output, want string
	}{
		{"announced", "Estimate: Yes\nOutput saved to: /tmp/x.txt\n", "/tmp/x.txt"},
		{"order does not matter", "Output saved to: out.csv\n  Estimate: Yes  \n", "out.csv"},
		{"not announced", "Output saved to: /tmp/x.txt\n", ""},
		{"no path", "Estimate: Yes\n", ""},
		{"analysis only", "Stock Analysis for VUG:\nRSI (14-day): 55.1\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseOutput(tt.output); got != tt.want {
				t.Errorf("ParseOutput() = %q, want %q", got, tt.want)
			}
		})
	}
}
