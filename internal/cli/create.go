package cli

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/vitereact-labs/create-vite-react/internal/project"
	"github.com/vitereact-labs/create-vite-react/internal/prompt"
	"github.com/vitereact-labs/create-vite-react/internal/scaffold"
	"github.com/vitereact-labs/create-vite-react/internal/templates"
)

// createOptions are the inputs fixed before any question is asked.
type createOptions struct {
	Template    string   // template variant name; "" asks about TypeScript
	TemplateDir string   // template directory on disk; overrides Template
	Exclude     []string // patterns of template paths to skip
	DefaultDir  string   // project directory offered by the name prompt
	Logger      logrus.FieldLogger
}

// templateSource locates the template tree to copy.
type templateSource struct {
	fsys fs.FS
	dir  string
	name string
}

// runCreate asks the questions, then materializes the chosen template.
// It returns prompt.ErrCancelled, unwrapped, when the user backs out.
func runCreate(pc project.Context, in io.Reader, out io.Writer, opts createOptions) error {
	// Fail on a bad --template before asking anything.
	if opts.TemplateDir == "" && opts.Template != "" {
		if _, err := templates.Lookup(opts.Template); err != nil {
			return err
		}
	}

	w := newWizard(pc, opts)
	answers, err := prompt.New(in, out).Ask(w.questions())
	if err != nil {
		return err
	}

	targetDir := w.targetDir(answers)
	root := pc.Resolve(targetDir)

	src, err := resolveTemplate(opts, answers.Bool(qTypeScript))
	if err != nil {
		return err
	}

	log := opts.Logger
	if log == nil {
		log = newLogger(io.Discard, false)
	}
	log.WithFields(logrus.Fields{
		"target":   targetDir,
		"template": src.name,
	}).Debug("resolved project")

	fmt.Fprintf(out, "\nScaffolding project into %s...\n", root)

	result, err := scaffold.Materialize(scaffold.Options{
		Root:        root,
		Overwrite:   answers.Bool(qOverwrite),
		Source:      src.fsys,
		TemplateDir: src.dir,
		PackageName: w.packageName(answers),
		Exclude:     scaffold.ParsePatterns(opts.Exclude),
		Logger:      log,
	})
	if err != nil {
		return err
	}

	printResult(out, pc, result)
	return nil
}

// resolveTemplate picks the on-disk template directory when one is given,
// otherwise the named or language-matched bundled variant.
func resolveTemplate(opts createOptions, typeScript bool) (templateSource, error) {
	if opts.TemplateDir != "" {
		dir, err := filepath.Abs(opts.TemplateDir)
		if err != nil {
			return templateSource{}, fmt.Errorf("resolving template directory: %w", err)
		}
		info, err := os.Stat(dir)
		if err != nil {
			return templateSource{}, fmt.Errorf("template directory: %w", err)
		}
		if !info.IsDir() {
			return templateSource{}, fmt.Errorf("template directory %s is not a directory", dir)
		}
		return templateSource{fsys: os.DirFS(dir), dir: ".", name: dir}, nil
	}

	var (
		v   templates.Variant
		err error
	)
	if opts.Template != "" {
		v, err = templates.Lookup(opts.Template)
	} else {
		v, err = templates.ForTypeScript(typeScript)
	}
	if err != nil {
		return templateSource{}, err
	}
	return templateSource{fsys: templates.FS, dir: v.Dir, name: v.Name}, nil
}

func printResult(out io.Writer, pc project.Context, result *scaffold.Result) {
	fmt.Fprintf(out, "\n%s Created vite react app at %s:\n\n",
		successStyle.Render("Success!"), highlightStyle.Render(result.Root))

	fmt.Fprintf(out, "Now run:\n\n")
	if result.Root != pc.Cwd {
		fmt.Fprintf(out, "  cd %s\n", pc.Relative(result.Root))
	}
	fmt.Fprintln(out, "  npm install")
	fmt.Fprintln(out, "  npm run dev")
	fmt.Fprintln(out)

	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, warningStyle.Render("Warnings:"))
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}
}
