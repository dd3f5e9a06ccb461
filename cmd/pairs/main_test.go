package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ogurasousui/employee-pairs/internal/core/assignment"
)

const sampleCSV = `1,10,2020-01-01,2020-01-10
2,10,2020-01-05,2020-01-15
1,20,2020-02-01,2020-02-10
2,20,2020-02-03,2020-02-20
3,10,2020-01-01,NULL
3,20,2020-02-01,2020-02-04
`

// setup は入力ファイルと、それを input.path に指定した設定ファイルを作成します。
func setup(t *testing.T, csv string) (configPath, inputPath string) {
	t.Helper()

	dir := t.TempDir()
	inputPath = filepath.Join(dir, "employees.csv")
	if err := os.WriteFile(inputPath, []byte(csv), 0o600); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	configPath = filepath.Join(dir, "config.yaml")
	content := "input:\n  path: " + inputPath + "\nlog:\n  level: error\n"
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath, inputPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestFind_UsesConfiguredInput(t *testing.T) {
	t.Parallel()

	configPath, _ := setup(t, sampleCSV)

	out, err := execute(t, "--config", configPath, "find")
	if err != nil {
		t.Fatalf("find returned error: %v", err)
	}

	// (1,3): 9 + 3 日、(2,3): 10 + 1 日、(1,2): 5 + 7 日。同日数は社員 ID の小さい方が先。
	if strings.TrimSpace(out) != "Id1=1 Id2=2 ProjectIDs=10,20 Days=12" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestFind_AllPrintsRanking(t *testing.T) {
	t.Parallel()

	configPath, inputPath := setup(t, sampleCSV)

	out, err := execute(t, "--config", configPath, "find", inputPath, "--all", "--workers", "2")
	if err != nil {
		t.Fatalf("find returned error: %v", err)
	}

	want := strings.Join([]string{
		"1. Id1=1 Id2=2 ProjectIDs=10,20 Days=12",
		"2. Id1=1 Id2=3 ProjectIDs=10,20 Days=12",
		"3. Id1=2 Id2=3 ProjectIDs=10,20 Days=11",
	}, "\n") + "\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestFind_NoQualifyingPair(t *testing.T) {
	t.Parallel()

	configPath, _ := setup(t, "1,10,2020-01-01,2020-01-10\n2,10,2020-01-05,2020-01-15\n")

	out, err := execute(t, "--config", configPath, "find")
	if err != nil {
		t.Fatalf("find returned error: %v", err)
	}
	if strings.TrimSpace(out) != "There are no legit pairs!" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestFind_Errors(t *testing.T) {
	t.Parallel()

	configPath, _ := setup(t, "1,10,2020-01-01,NULL\n1,10,2020-01-01,NULL\nbad,10,2020-01-01,NULL\n")

	_, err := execute(t, "--config", configPath, "find")
	if !errors.Is(err, assignment.ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected line number in error, got %v", err)
	}

	_, err = execute(t, "--config", configPath, "find", filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, assignment.ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}

	_, err = execute(t, "--config", configPath, "find", "--workers", "-3")
	if err == nil {
		t.Fatal("expected error for negative workers")
	}
}

func TestFind_ForcedDateFormat(t *testing.T) {
	t.Parallel()

	configPath, inputPath := setup(t, strings.Join([]string{
		"1,10,01.01.2020,10.01.2020",
		"2,10,05.01.2020,15.01.2020",
		"1,20,01.02.2020,10.02.2020",
		"2,20,03.02.2020,20.02.2020",
	}, "\n"))

	out, err := execute(t, "--config", configPath, "find", "-i", inputPath, "--date-format", "dd.MM.yyyy")
	if err != nil {
		t.Fatalf("find returned error: %v", err)
	}
	if strings.TrimSpace(out) != "Id1=1 Id2=2 ProjectIDs=10,20 Days=12" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestFind_ExplicitConfigMustExist(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "find")
	if err == nil || !strings.Contains(err.Error(), "failed to load config") {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()

	configPath, _ := setup(t, sampleCSV)

	out, err := execute(t, "--config", configPath, "formats")
	if err != nil {
		t.Fatalf("formats returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(assignment.DefaultDateLayouts) || lines[0] != "2006-01-02" {
		t.Fatalf("unexpected formats output: %q", out)
	}
}
