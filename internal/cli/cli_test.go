package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestNewOnWindows(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, "", "new", "widget", "--dir", dir, "--os", "windows", "--git-name", "Ada Lovelace")
	if err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}

	root := filepath.Join(dir, "widget")
	for _, f := range []string{
		"main.py", "test_main.py", ".env", "requirements.txt", ".gitignore", "README.md",
		"src/__init__.py",
		"000_init.bat", "001_env.bat", "002_activate.bat", "003_setup.bat",
		"004_run.bat", "005_run_test.bat", "006_deactivate.bat",
	} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(f))); err != nil {
			t.Errorf("expected %s: %v", f, err)
		}
	}

	initScript := readFile(t, filepath.Join(root, "000_init.bat"))
	assertContains(t, initScript, `git config user.name "Ada Lovelace"`)

	assertContains(t, out, "Created directory: "+root)
	assertContains(t, out, "Created: "+filepath.Join(root, "README.md"))
	assertContains(t, out, "Project structure generated successfully!")
	assertNotContains(t, out, "skipped")
}

func TestNewSkipsScriptsOffTarget(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, "", "new", "demo", "--dir", dir, "--os", "linux")
	if err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "demo", "*.bat"))
	if len(matches) != 0 {
		t.Errorf("no helper scripts expected, found %v", matches)
	}
	assertContains(t, out, "Batch file creation skipped (only supported on Windows).")
	assertContains(t, out, "Project structure generated successfully!")
}

func TestNewPromptsForName(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, "prompted\n", "new", "--dir", dir, "--os", "linux")
	if err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}
	assertContains(t, out, "Enter the name of your project:")
	if !strings.HasPrefix(readFile(t, filepath.Join(dir, "prompted", "README.md")), "# Prompted\n") {
		t.Error("README title should use the prompted name")
	}
}

func TestNewTestsLayoutFromConfig(t *testing.T) {
	dir := isolate(t)
	t.Setenv("PYSKEL_LAYOUT", "tests")

	if out, err := run(t, "", "new", "demo", "--dir", dir, "--os", "linux"); err != nil {
		t.Fatalf("new failed: %v\n%s", err, out)
	}
	for _, f := range []string{"tests/__init__.py", "tests/conftest.py", "tests/test_main.py"} {
		if _, err := os.Stat(filepath.Join(dir, "demo", filepath.FromSlash(f))); err != nil {
			t.Errorf("expected %s: %v", f, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "demo", "test_main.py")); !os.IsNotExist(err) {
		t.Error("test_main.py should not be written at the root in the tests layout")
	}
}

func TestNewDryRun(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, "", "new", "demo", "--dir", dir, "--os", "windows", "--dry-run")
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	assertContains(t, out, "Plan for "+filepath.Join(dir, "demo"))
	assertContains(t, out, "006_deactivate.bat")
	if _, err := os.Stat(filepath.Join(dir, "demo")); !os.IsNotExist(err) {
		t.Error("dry run must not create the project directory")
	}
}

func TestNewRejectsBadFlags(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown layout", []string{"new", "demo", "--dir", dir, "--layout", "nested"}},
		{"nested venv dir", []string{"new", "demo", "--dir", dir, "--venv-dir", "a/b"}},
		{"too many args", []string{"new", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, "", tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewRejectsBadEnvironmentSettings(t *testing.T) {
	dir := isolate(t)
	t.Setenv("PYSKEL_VENV_DIR", "my env")

	_, err := run(t, "", "new", "demo", "--dir", dir, "--os", "windows")
	if err == nil {
		t.Fatal("expected venv_dir with a space to be rejected")
	}
	assertContains(t, err.Error(), "PYSKEL_VENV_DIR")
	if _, err := os.Stat(filepath.Join(dir, "demo")); !os.IsNotExist(err) {
		t.Error("nothing should be written when settings are invalid")
	}

	if _, err := run(t, "", "render", "script-env", "demo"); err == nil {
		t.Error("render should reject the same setting")
	}

	out, err := run(t, "", "new", "demo", "--dir", dir, "--os", "windows", "--venv-dir", "venv")
	if err != nil {
		t.Fatalf("flag should override the bad environment value: %v\n%s", err, out)
	}
	assertContains(t, readFile(t, filepath.Join(dir, "demo", "001_env.bat")), "venv")
}

func TestNewFailsOnBlockedRoot(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "demo"), []byte("file"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := run(t, "", "new", "demo", "--dir", dir, "--os", "linux")
	if err == nil {
		t.Fatal("expected failure when the project path is a file")
	}
	assertContains(t, err.Error(), "mkdir")
}

func TestRender(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "render", "readme", "widget")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.HasPrefix(out, "# Widget\n") {
		t.Errorf("unexpected readme start: %q", strings.SplitN(out, "\n", 2)[0])
	}

	out, err = run(t, "", "render", "readme", "widget", "--layout", "tests")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	assertContains(t, out, "(`tests/`)")

	if _, err := run(t, "", "render", "no-such-entry", "widget"); err == nil {
		t.Error("expected error for unknown template id")
	}
}

func TestTemplates(t *testing.T) {
	isolate(t)

	out, err := run(t, "", "templates")
	if err != nil {
		t.Fatalf("templates failed: %v", err)
	}
	assertContains(t, out, "Catalog python-basic")
	assertContains(t, out, "script-init")
	assertContains(t, out, "(Windows only)")

	t.Setenv("PYSKEL_SCRIPTS_OS", "darwin")
	out, err = run(t, "", "templates")
	if err != nil {
		t.Fatalf("templates failed: %v", err)
	}
	assertContains(t, out, "(macOS only)")
	assertNotContains(t, out, "Windows only")
	assertContains(t, out, "tests-conftest")
}

func TestConfigSetGetList(t *testing.T) {
	home := isolate(t)

	if out, err := run(t, "", "config", "set", "venv_dir", "venv"); err != nil {
		t.Fatalf("config set failed: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(home, "config.yaml")); err != nil {
		t.Errorf("config file not written: %v", err)
	}

	viper.Reset()
	out, err := run(t, "", "config", "get", "venv_dir")
	if err != nil {
		t.Fatalf("config get failed: %v", err)
	}
	if strings.TrimSpace(out) != "venv" {
		t.Errorf("config get = %q, want venv", out)
	}

	out, err = run(t, "", "config", "list")
	if err != nil {
		t.Fatalf("config list failed: %v", err)
	}
	assertContains(t, out, "venv_dir = venv")
	assertContains(t, out, "scripts_os = windows")

	if _, err := run(t, "", "config", "set", "bogus", "1"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestVersion(t *testing.T) {
	isolate(t)
	buildVersion = "1.2.3"

	out, err := run(t, "", "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version --short = %q", out)
	}

	out, err = run(t, "", "version", "--json")
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out, `"catalog": "1.0.0"`)
	assertContains(t, out, `"module": "github.com/pyskel-labs/pyskel"`)
}

// ─── Test Helpers ──────────────────────────────────────────────────

// isolate points the config at a temp home and returns a temp work dir.
func isolate(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	t.Setenv("PYSKEL_HOME", home)
	return home
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag in the tree to its default, since cobra
// keeps parsed values on package-level commands between executions.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q", substr)
	}
}
