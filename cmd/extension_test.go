package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts")
	}
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	script := "#!/bin/sh\n" +
		"echo \"$" + EnvAPIKey + " $" + EnvFunction + " $*\" > " + out + "\n" +
		"exit 3\n"
	if err := os.WriteFile(filepath.Join(dir, "stockview-hello"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	prevKey, prevFunc := *apiKey, *function
	defer func() { *apiKey, *function = prevKey, prevFunc }()
	*apiKey, *function = "secret", "TIME_SERIES_WEEKLY"

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found || code != 3 {
		t.Fatalf("RunExtension() = %v, %d, want true, 3", found, code)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if want := "secret TIME_SERIES_WEEKLY a b"; strings.TrimSpace(string(got)) != want {
		t.Errorf("extension saw %q, want %q", got, want)
	}

	if found, _ := RunExtension("missing-extension", nil); found {
		t.Errorf("RunExtension(missing) = true, want false")
	}
}
