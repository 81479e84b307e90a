package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taxtrace-ai/taxtrace-go/internal/testutil"
)

// execute runs the root command with args and returns captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	for _, want := range []string{"taxtrace version", "go:", "os/arch:"} {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q:\n%s", want, out)
		}
	}
}

func TestComputeCommand(t *testing.T) {
	path := testutil.WriteReturn(t, testutil.SingleW2YAML)

	out, err := execute(t, "compute", "--return", path, "--no-color")
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	for _, want := range []string{
		"form1040.line1a",
		"$75,000.00",
		"form1040.line15",
		"No optional schedules executed.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("compute output missing %q:\n%s", want, out)
		}
	}
}

func TestComputeCommandAllLines(t *testing.T) {
	path := testutil.WriteReturn(t, testutil.SingleW2YAML)

	out, err := execute(t, "compute", "--return", path, "--no-color", "--all")
	if err != nil {
		t.Fatalf("compute --all failed: %v", err)
	}
	if !strings.Contains(out, "form1040.line33") {
		t.Errorf("--all output missing non-summary line:\n%s", out)
	}
	// Reset for later tests sharing the package-level flag.
	computeAllLines = false
}

func TestComputeCommandExecutedSchedules(t *testing.T) {
	path := testutil.WriteReturn(t, testutil.SingleW2YAML+`
transactions:
  - id: tx-1
    description: 100 sh XYZ
    term: long
    proceeds: 1500000
    basis: 1200000
`)

	out, err := execute(t, "compute", "--return", path, "--no-color")
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if !strings.Contains(out, "scheduleD") {
		t.Errorf("executed schedules missing scheduleD:\n%s", out)
	}
}

func TestExplainCommand(t *testing.T) {
	path := testutil.WriteReturn(t, testutil.SingleW2YAML)

	out, err := execute(t, "explain", "form1040.line1a", "--return", path)
	if err != nil {
		t.Fatalf("explain failed: %v", err)
	}

	if !strings.Contains(out, "Wages, salaries, tips") {
		t.Errorf("explain missing label:\n%s", out)
	}
	if !strings.Contains(out, "Acme Corp") {
		t.Errorf("explain did not bottom out at the W-2:\n%s", out)
	}
	if !strings.Contains(out, "[w2:w2-1:box1]") {
		t.Errorf("explain missing leaf citation:\n%s", out)
	}
	if strings.Contains(out, "Unknown") {
		t.Errorf("explain of a complete return shows Unknown:\n%s", out)
	}
}

func TestExplainCommandUnknownNode(t *testing.T) {
	path := testutil.WriteReturn(t, testutil.SingleW2YAML)

	_, err := execute(t, "explain", "form1040.line999", "--return", path)
	if err == nil {
		t.Fatal("expected error for unknown node")
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Errorf("expected ExitError code 1, got %v", err)
	}
}

func TestOrderCommand(t *testing.T) {
	path := testutil.WriteReturn(t, testutil.SingleW2YAML)

	out, err := execute(t, "order", "--return", path)
	if err != nil {
		t.Fatalf("order failed: %v", err)
	}

	// Inputs must print strictly before the lines derived from them.
	sequence := []string{"form1040.line1a", "form1040.line9", "form1040.line11", "form1040.line15"}
	last := -1
	for _, id := range sequence {
		idx := strings.Index(out, id+" ")
		if idx < 0 {
			t.Fatalf("order output missing %q:\n%s", id, out)
		}
		if idx <= last {
			t.Errorf("%q appears before its input in order output", id)
		}
		last = idx
	}
}

func TestCyclesCommandClean(t *testing.T) {
	path := testutil.WriteReturn(t, testutil.SingleW2YAML)

	out, err := execute(t, "cycles", "--return", path, "--no-color")
	if err != nil {
		t.Fatalf("cycles failed: %v", err)
	}
	if !strings.Contains(out, "No dependency cycles found.") {
		t.Errorf("cycles output = %q", out)
	}
}

func TestCyclesCommandJSON(t *testing.T) {
	path := testutil.WriteReturn(t, testutil.SingleW2YAML)

	out, err := execute(t, "cycles", "--return", path, "--json")
	if err != nil {
		t.Fatalf("cycles --json failed: %v", err)
	}
	if !strings.Contains(out, `"found": false`) {
		t.Errorf("cycles JSON = %q", out)
	}
	cyclesJSON = false
}

func TestExportCommand(t *testing.T) {
	path := testutil.WriteReturn(t, testutil.SingleW2YAML)
	outFile := filepath.Join(t.TempDir(), "values.csv")

	_, err := execute(t, "export", "--return", path, "-o", outFile)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "node_id,label,amount_cents,amount,inputs") {
		t.Errorf("export header wrong:\n%s", content)
	}
	if !strings.Contains(content, "form1040.line1a") {
		t.Errorf("export missing line1a:\n%s", content)
	}
	if !strings.Contains(content, "7500000") {
		t.Errorf("export missing cent amount:\n%s", content)
	}
	exportOut = ""
}

func TestInitCommand(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	out, err := execute(t, "init", "--no-color")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, "created") {
		t.Errorf("init output = %q", out)
	}
	for _, rel := range []string{".taxtrace/config.yaml", "return.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("init did not create %s: %v", rel, err)
		}
	}

	// A second run must refuse to clobber the workspace.
	_, err = execute(t, "init")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Errorf("expected ExitError code 1 on existing workspace, got %v", err)
	}
}

func TestDepsCommandNode(t *testing.T) {
	path := testutil.WriteReturn(t, testutil.SingleW2YAML)

	out, err := execute(t, "deps", "form1040.line9", "--return", path, "--no-color")
	if err != nil {
		t.Fatalf("deps failed: %v", err)
	}
	if !strings.Contains(out, "Direct Inputs") {
		t.Errorf("deps output missing inputs section:\n%s", out)
	}
	if !strings.Contains(out, "form1040.line1a") {
		t.Errorf("deps output missing line1a:\n%s", out)
	}
}

func TestDepsCommandTransitive(t *testing.T) {
	path := testutil.WriteReturn(t, testutil.SingleW2YAML)

	out, err := execute(t, "deps", "form1040.line15", "--all", "--return", path, "--no-color")
	if err != nil {
		t.Fatalf("deps --all failed: %v", err)
	}
	// line15 reaches wages only transitively, through lines 9 and 11.
	if !strings.Contains(out, "form1040.line1a") {
		t.Errorf("transitive inputs missing line1a:\n%s", out)
	}
	depsAll = false
}

func TestDepsCommandOverview(t *testing.T) {
	path := testutil.WriteReturn(t, testutil.SingleW2YAML)

	out, err := execute(t, "deps", "--return", path, "--no-color")
	if err != nil {
		t.Fatalf("deps overview failed: %v", err)
	}
	for _, want := range []string{"Nodes:", "Edges:", "Roots"} {
		if !strings.Contains(out, want) {
			t.Errorf("deps overview missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommandYAML(t *testing.T) {
	configFormat = "yaml"
	out, err := execute(t, "config", "--no-color")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if !strings.Contains(out, "taxtrace:") {
		t.Errorf("config YAML missing top-level key:\n%s", out)
	}
	if !strings.Contains(out, "year: 2024") {
		t.Errorf("config YAML missing default year:\n%s", out)
	}
	configFormat = "terminal"
}

func TestConfigCommandValidate(t *testing.T) {
	path := testutil.WriteReturn(t, testutil.SingleW2YAML)
	configValidate = true

	out, err := execute(t, "config", "--return", path, "--no-color")
	if err != nil {
		t.Fatalf("config --validate failed: %v", err)
	}
	if !strings.Contains(out, "Configuration is valid.") {
		t.Errorf("validate output = %q", out)
	}
	configValidate = false
}
