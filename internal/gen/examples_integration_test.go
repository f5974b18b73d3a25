package gen_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func runExampleIntegrationTest(t *testing.T, exampleName string) {
	t.Helper()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}

	exampleDir := filepath.Join(repoRoot, "examples", exampleName)
	outDir := filepath.Join(exampleDir, "generated")

	// Ensure a clean output dir so the test is repeatable.
	_ = os.RemoveAll(outDir)

	cmd := exec.CommandContext(context.Background(), "go", "run", "./cmd/fieldbind", "gen",
		"--packages", "./examples/"+exampleName,
		"--bindings", filepath.Join(exampleDir, "bindings.yaml"),
		"--out", outDir,
	)
	cmd.Dir = repoRoot

	b, err := cmd.CombinedOutput()
	if err != nil {
		// Best-effort: if any file got written, dump it for easier debugging.
		if entries, readErr := os.ReadDir(outDir); readErr == nil {
			for _, e := range entries {
				if e.IsDir() {
					continue
				}

				p := filepath.Join(outDir, e.Name())
				if fb, rerr := os.ReadFile(p); rerr == nil {
					t.Logf("generated file %s:\n%s", p, string(fb))
				}
			}
		}

		t.Fatalf("gen failed: %v\n%s", err, string(b))
	}

	build := exec.CommandContext(context.Background(), "go", "test", "./examples/"+exampleName, "-run", "^$", "-count=1")
	build.Dir = repoRoot

	b, err = build.CombinedOutput()
	if err != nil {
		t.Fatalf("compile failed: %v\n%s", err, string(b))
	}
}

func TestMovieFilterExample(t *testing.T) {
	runExampleIntegrationTest(t, "moviefilter")
}

func TestCheckFailsOnIncompleteManifest(t *testing.T) {
	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}

	manifest := filepath.Join(t.TempDir(), "bindings.yaml")
	content := `version: "1"
bindings:
  - record: moviefilter.Filter
    target: "*moviefilter.Clause"
    handlers:
      - field: DirectorEq
        func: DirectorClause
        optional: true
`
	if err := os.WriteFile(manifest, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	cmd := exec.CommandContext(context.Background(), "go", "run", "./cmd/fieldbind", "check",
		"--packages", "./examples/moviefilter",
		"--bindings", manifest,
	)
	cmd.Dir = repoRoot

	b, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected check to fail, output:\n%s", string(b))
	}

	out := string(b)
	if !strings.Contains(out, "missing field handlers") {
		t.Fatalf("expected missing field handlers diagnostic, got:\n%s", out)
	}

	for _, field := range []string{"RatingGte", "ReleaseYear", "TitleLike"} {
		if !strings.Contains(out, field) {
			t.Fatalf("expected %s in diagnostics, got:\n%s", field, out)
		}
	}
}
