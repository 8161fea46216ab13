package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ashgrove-labs/wordle-solver/wordlist"
)

func writeWordFile(t *testing.T, dir, name string, words []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	var content string
	for _, w := range words {
		content += w + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

var sampleWords = []string{
	"crate", "slate", "mount", "fizzy", "pious", "zebra", "humph", "crimp",
	"brisk", "vouch", "adopt", "nymph",
}

func TestBuildMatrixAndPlay(t *testing.T) {
	dir := t.TempDir()
	solPath := writeWordFile(t, dir, "solutions.txt", sampleWords)
	matrixPath := filepath.Join(dir, "matrix.bin")

	code := run([]string{
		"build-matrix",
		"--solutions", solPath,
		"--guesses", solPath,
		"--out", matrixPath,
		"--workers", "2",
	})
	if code != exitOK {
		t.Fatalf("build-matrix exit code = %d, want %d", code, exitOK)
	}
	if _, err := os.Stat(matrixPath); err != nil {
		t.Fatalf("matrix file not created: %v", err)
	}

	code = run([]string{"play", "--matrix", matrixPath, "--target", "crimp"})
	if code != exitOK {
		t.Fatalf("play exit code = %d, want %d", code, exitOK)
	}
}

func TestEvalProducesJSONScores(t *testing.T) {
	dir := t.TempDir()
	solPath := writeWordFile(t, dir, "solutions.txt", sampleWords)
	matrixPath := filepath.Join(dir, "matrix.bin")

	if code := run([]string{
		"build-matrix", "--solutions", solPath, "--guesses", solPath, "--out", matrixPath,
	}); code != exitOK {
		t.Fatalf("build-matrix exit code = %d", code)
	}

	targetsPath := writeWordFile(t, dir, "targets.txt", sampleWords[:4])

	m, err := loadMatrix(matrixPath)
	if err != nil {
		t.Fatalf("loadMatrix: %v", err)
	}
	targets, err := wordlist.LoadFile(targetsPath)
	if err != nil {
		t.Fatalf("loading targets: %v", err)
	}

	scores, err := evaluate(m, targets.Words(), 2, nil)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(scores) != len(sampleWords[:4]) {
		t.Errorf("got %d scores, want %d", len(scores), len(sampleWords[:4]))
	}
	for target, score := range scores {
		if score < 0 || score > 6 {
			t.Errorf("score for %s = %d, out of [0,6]", target, score)
		}
	}

	data, err := json.Marshal(scores)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var roundTrip map[string]int
	if err := json.Unmarshal(data, &roundTrip); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
}

func TestRunRejectsUnknownSubcommand(t *testing.T) {
	if code := run([]string{"bogus"}); code != exitInputError {
		t.Errorf("exit code = %d, want %d", code, exitInputError)
	}
}

func TestRunRejectsMissingFlags(t *testing.T) {
	if code := run([]string{"build-matrix"}); code != exitInputError {
		t.Errorf("exit code = %d, want %d", code, exitInputError)
	}
}
