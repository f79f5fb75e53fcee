package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Helper function to create a temporary source file
func createTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func TestRunPrintsTokens(t *testing.T) {
	path := createTestFile(t, t.TempDir(), "return_2.c", "int main() {\n    return 2;\n}\n")

	var stdout, stderr strings.Builder
	if code := run([]string{path}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	want := "1:1\tKeyword(Int)\n" +
		"1:5\tIdentifier(\"main\")\n" +
		"1:9\tOpenParen\n" +
		"1:10\tCloseParen\n" +
		"1:12\tOpenBrace\n" +
		"2:5\tKeyword(Return)\n" +
		"2:12\tIntegerLiteral(2)\n" +
		"2:13\tSemicolon\n" +
		"3:1\tCloseBrace\n"
	if stdout.String() != want {
		t.Errorf("Expected output:\n%s\ngot:\n%s", want, stdout.String())
	}
}

func TestRunWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := createTestFile(t, dir, "a.c", "return 0;")
	out := filepath.Join(dir, "a.tok")

	var stdout, stderr strings.Builder
	if code := run([]string{"-o", out, path}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected empty stdout, got %q", stdout.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.Contains(string(data), "IntegerLiteral(0)") {
		t.Errorf("Expected literal in output, got %q", data)
	}
}

func TestRunReportsLexError(t *testing.T) {
	path := createTestFile(t, t.TempDir(), "bad.c", "int main() {\n    return 2 # 3;\n}\n")

	var stdout, stderr strings.Builder
	if code := run([]string{path}, &stdout, &stderr); code != 1 {
		t.Fatalf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), path+":2:14: unrecognized input") {
		t.Errorf("Expected positioned error, got %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected no partial output, got %q", stdout.String())
	}
}

func TestRunOverflowPolicy(t *testing.T) {
	path := createTestFile(t, t.TempDir(), "big.c", "return 4294967296;")

	var stdout, stderr strings.Builder
	if code := run([]string{path}, &stdout, &stderr); code != 1 {
		t.Fatalf("Expected exit code 1, got %d", code)
	}
	stdout.Reset()
	stderr.Reset()
	if code := run([]string{"-wrap", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "IntegerLiteral(0)") {
		t.Errorf("Expected wrapped literal, got %q", stdout.String())
	}
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr strings.Builder
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Fatalf("Expected exit code 2, got %d", code)
	}
	if code := run([]string{filepath.Join(t.TempDir(), "missing.c")}, &stdout, &stderr); code != 1 {
		t.Fatalf("Expected exit code 1 for missing file, got %d", code)
	}
}
