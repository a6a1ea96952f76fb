package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitereact-labs/create-vite-react/internal/branding"
	"github.com/vitereact-labs/create-vite-react/internal/config"
	"github.com/vitereact-labs/create-vite-react/internal/project"
	"github.com/vitereact-labs/create-vite-react/internal/prompt"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	templateFlag    string
	templateDirFlag string
	excludeFlags    []string
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [directory]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new Vite + React project.

The project is written to [directory], or to a directory named after the
project name you are asked for. Use "." to scaffold into the current
directory. A directory that is not empty is only cleared after you confirm;
its .git directory is always kept.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load()
	},
	RunE: runRoot,
}

func init() {
	rootCmd.Flags().StringVarP(&templateFlag, "template", "t", "", "Template variant to use (js, ts); asked when omitted")
	rootCmd.Flags().StringVar(&templateDirFlag, "template-dir", "", "Use a template directory on disk instead of a bundled one")
	rootCmd.Flags().StringArrayVar(&excludeFlags, "exclude", nil, "Regular expression of template paths to skip (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log each scaffolding step to stderr")
}

func runRoot(cmd *cobra.Command, args []string) error {
	pc, err := project.NewContext(args)
	if err != nil {
		return err
	}

	template := templateFlag
	if template == "" {
		template = config.Get(config.KeyTemplate)
	}

	opts := createOptions{
		Template:    template,
		TemplateDir: templateDirFlag,
		Exclude:     append(config.GetStringSlice(config.KeyExclude), excludeFlags...),
		DefaultDir:  config.Get(config.KeyDefaultDir),
		Logger:      newLogger(cmd.ErrOrStderr(), verbose),
	}

	err = runCreate(pc, cmd.InOrStdin(), cmd.OutOrStdout(), opts)
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(cmd.OutOrStdout(), cancelledMessage())
		return nil
	}
	return err
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+err.Error()))
	}
	return err
}
