package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pyskel-labs/pyskel/internal/catalog"
	"github.com/pyskel-labs/pyskel/internal/config"
	"github.com/pyskel-labs/pyskel/internal/fsops"
	"github.com/pyskel-labs/pyskel/internal/plan"
	"github.com/pyskel-labs/pyskel/internal/platform"
	"github.com/pyskel-labs/pyskel/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	newDir      string
	newLayout   string
	newOS       string
	newVenvDir  string
	newGitName  string
	newGitEmail string
	newDryRun   bool
)

func init() {
	newCmd.Flags().StringVar(&newDir, "dir", "", "Parent directory for the project (default: current directory)")
	newCmd.Flags().StringVar(&newLayout, "layout", "", "Test layout: flat (test_main.py at the root) or tests (tests/ package)")
	newCmd.Flags().StringVar(&newOS, "os", "", "Operating system to generate for instead of the detected one")
	newCmd.Flags().StringVar(&newVenvDir, "venv-dir", "", "Virtual environment directory used by the helper scripts")
	newCmd.Flags().StringVar(&newGitName, "git-name", "", "git user.name written into 000_init.bat")
	newCmd.Flags().StringVar(&newGitEmail, "git-email", "", "git user.email written into 000_init.bat")
	newCmd.Flags().BoolVar(&newDryRun, "dry-run", false, "Print the plan without writing anything")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:     "new [name]",
	Aliases: []string{"create"},
	Short:   "Generate a new Python project",
	Long: `Generate a Python project skeleton in a new directory named after the project.

Existing files with the same names are overwritten. When the name is omitted
you are prompted for it.

Examples:
  pyskel new widget
  pyskel new widget --layout tests --dir ~/src
  pyskel new widget --os windows --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		answer, err := prompt.ProjectName(cmd.Context(), promptDriver(cmd))
		if err != nil {
			return err
		}
		name = answer
	}

	parent := newDir
	if parent == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		parent = wd
	}

	opts, err := newOptions(cmd)
	if err != nil {
		return err
	}

	detector := platform.Host()
	if newOS != "" {
		detector = platform.Fixed(newOS)
	}

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("loading template catalog: %w", err)
	}

	p, err := plan.Build(cat, parent, name, opts, detector)
	if err != nil {
		return err
	}

	if newDryRun {
		p.Describe(out)
		return nil
	}

	m := fsops.NewOS(progressObserver(out))
	if _, err := plan.Execute(p, m); err != nil {
		return err
	}

	if p.Notice != "" {
		fmt.Fprintln(out)
		printWarning(out, p.Notice)
	}
	fmt.Fprintln(out)
	printSuccess(out, "Project structure generated successfully!")
	return nil
}

// newOptions merges config settings with flags given on the command line.
// Flags are checked as given; whatever still comes from the config file or
// the environment is checked after the merge.
func newOptions(cmd *cobra.Command) (plan.Options, error) {
	s := config.Current()

	overrides := []struct {
		flag  string
		key   string
		value string
		dst   *string
	}{
		{"layout", config.KeyLayout, newLayout, &s.Layout},
		{"venv-dir", config.KeyVenvDir, newVenvDir, &s.VenvDir},
		{"git-name", config.KeyGitUserName, newGitName, &s.GitUserName},
		{"git-email", config.KeyGitUserEmail, newGitEmail, &s.GitUserEmail},
	}
	for _, o := range overrides {
		if !cmd.Flags().Changed(o.flag) {
			continue
		}
		if err := config.Validate(o.key, o.value); err != nil {
			return plan.Options{}, fmt.Errorf("--%s: %w", o.flag, err)
		}
		*o.dst = o.value
	}
	if err := s.Validate(); err != nil {
		return plan.Options{}, err
	}

	return plan.Options{
		Layout:       s.Layout,
		ScriptsOS:    s.ScriptsOS,
		VenvDir:      s.VenvDir,
		GitUserName:  s.GitUserName,
		GitUserEmail: s.GitUserEmail,
	}, nil
}

// promptDriver uses survey on a real terminal and a plain line reader
// otherwise (pipes, tests).
func promptDriver(cmd *cobra.Command) prompt.Driver {
	if f, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return prompt.NewSurveyDriver(f, os.Stdout, os.Stderr)
	}
	return prompt.NewLineDriver(cmd.InOrStdin(), cmd.OutOrStdout())
}
