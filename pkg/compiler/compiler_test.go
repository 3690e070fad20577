package compiler

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestCompileConstantOutput(t *testing.T) {
	testCompile(t, "const_out", "out = 1;\n", nil, `out true`)
}

func TestCompileXorOfInputs(t *testing.T) {
	testCompile(t, "xor_out", "out = a ^ b;\n", []string{"a=1", "b=0"}, `out true`)
}

func TestCompileMultipleOutputs(t *testing.T) {
	testCompile(t, "multi_out", "sum = a ^ b;\ncarry = a & b;\n",
		[]string{"a=1", "b=1"}, "sum false\ncarry true")
}

// testCompile writes source to a *.bool file, compiles it, runs the
// resulting binary with runArgs, and checks its stdout starts with
// expected.
func testCompile(t *testing.T, name string, source string, runArgs []string, expected string) {
	t.Helper()

	// Create temp directory in project root for module support
	cwd, _ := os.Getwd()
	projectRoot := filepath.Join(cwd, "../..")
	tmpDir, err := os.MkdirTemp(projectRoot, "test_build_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Write source file
	sourceFile := filepath.Join(tmpDir, name+".bool")
	if err := os.WriteFile(sourceFile, []byte(source), 0644); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}

	// Compile with absolute output path
	outputFile := filepath.Join(tmpDir, name)
	c := Compiler{
		SourceFile: sourceFile,
		OutputName: outputFile,
		KeepTemp:   false,
	}

	builtFile, err := c.Compile()
	if err != nil {
		t.Fatalf("Compilation failed: %v", err)
	}

	if builtFile != outputFile {
		t.Fatalf("Output file mismatch: expected %s, got %s", outputFile, builtFile)
	}

	// Make sure binary exists
	if _, err := os.Stat(outputFile); os.IsNotExist(err) {
		t.Fatalf("Output binary not found: %s", outputFile)
	}
	defer os.Remove(outputFile)

	// Run the binary
	cmd := exec.Command(outputFile, runArgs...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			t.Fatalf("Binary execution failed: %v\nStderr: %s", err, exitErr.Stderr)
		}
		t.Fatalf("Binary execution failed: %v", err)
	}

	// Check result
	result := strings.TrimSpace(string(output))
	if !strings.HasPrefix(result, expected) {
		t.Errorf("Expected output to start with:\n%s\nGot:\n%s", expected, result)
	}
}

func TestCompileWithFlags(t *testing.T) {
	cwd, _ := os.Getwd()
	projectRoot := filepath.Join(cwd, "../..")
	tmpDir, err := os.MkdirTemp(projectRoot, "test_build_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	sourceFile := filepath.Join(tmpDir, "test.bool")
	if err := os.WriteFile(sourceFile, []byte("out = a;\n"), 0644); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}

	// Set custom output name
	customOut := filepath.Join(tmpDir, "custom_name")

	c := Compiler{
		SourceFile: sourceFile,
		OutputName: customOut,
		GoFlags:    []string{"-v"}, // verbose go build
	}

	outputFile, err := c.Compile()
	if err != nil {
		t.Fatalf("Compilation with flags failed: %v", err)
	}

	if outputFile != customOut {
		t.Errorf("Expected output name %s, got %s", customOut, outputFile)
	}

	if _, err := os.Stat(outputFile); os.IsNotExist(err) {
		t.Errorf("Custom output file not created: %s", outputFile)
	}
}

func TestCompileKeepTemp(t *testing.T) {
	cwd, _ := os.Getwd()
	projectRoot := filepath.Join(cwd, "../..")
	tmpDir, err := os.MkdirTemp(projectRoot, "test_build_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	sourceFile := filepath.Join(tmpDir, "test.bool")
	if err := os.WriteFile(sourceFile, []byte("out = a;\n"), 0644); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}

	outputFile := filepath.Join(tmpDir, "test_keeptemp")
	c := Compiler{
		SourceFile: sourceFile,
		OutputName: outputFile,
		KeepTemp:   true,
	}

	builtFile, err := c.Compile()
	if err != nil {
		t.Fatalf("Compilation failed: %v", err)
	}
	defer os.Remove(builtFile)

	// Note: the generated source is left in place next to the binary;
	// KeepTemp only disables its removal, it doesn't relocate it.
}

func TestCompileInvalidSource(t *testing.T) {
	cwd, _ := os.Getwd()
	projectRoot := filepath.Join(cwd, "../..")
	tmpDir, err := os.MkdirTemp(projectRoot, "test_build_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	sourceFile := filepath.Join(tmpDir, "invalid.bool")
	if err := os.WriteFile(sourceFile, []byte("out = (a;"), 0644); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}

	c := Compiler{
		SourceFile: sourceFile,
	}

	_, err = c.Compile()
	if err == nil {
		t.Error("Expected compilation to fail for invalid syntax")
	}
}
