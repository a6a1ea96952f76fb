package cli

import (
	"errors"
	"fmt"

	"github.com/vitereact-labs/create-vite-react/internal/branding"
	"github.com/vitereact-labs/create-vite-react/internal/project"
	"github.com/vitereact-labs/create-vite-react/internal/prompt"
)

// Question names, also the keys of the collected answers.
const (
	qProjectName = "projectName"
	qOverwrite   = "overwrite"
	qPackageName = "packageName"
	qTypeScript  = "useTypeScript"
)

var errInvalidPackageName = errors.New("invalid package.json name")

// wizard derives the question sequence from the process context and the
// options fixed before prompting.
type wizard struct {
	pc          project.Context
	argTarget   string // formatted positional argument, "" when absent
	defaultDir  string
	askTemplate bool
}

func newWizard(pc project.Context, opts createOptions) wizard {
	defaultDir := project.FormatTargetDir(opts.DefaultDir)
	if defaultDir == "" {
		defaultDir = branding.DefaultTargetDir()
	}
	return wizard{
		pc:          pc,
		argTarget:   pc.TargetArg(),
		defaultDir:  defaultDir,
		askTemplate: opts.Template == "" && opts.TemplateDir == "",
	}
}

// targetDir is the project directory implied by the answers so far.
func (w wizard) targetDir(a prompt.Answers) string {
	if a.Has(qProjectName) {
		if t := project.FormatTargetDir(a.String(qProjectName)); t != "" {
			return t
		}
		return w.defaultDir
	}
	return w.argTarget
}

func (w wizard) projectName(a prompt.Answers) string {
	return w.pc.ProjectName(w.targetDir(a))
}

// needsOverwrite reports whether the target exists with content the user
// has to agree to remove.
func (w wizard) needsOverwrite(a prompt.Answers) bool {
	// An empty target resolves to the working directory, which is checked too.
	root := w.pc.Resolve(w.targetDir(a))
	if !project.Exists(root) {
		return false
	}
	empty, err := project.IsEmpty(root)
	// An unreadable target is offered for overwrite; emptying it then
	// reports the real error.
	return err != nil || !empty
}

func (w wizard) questions() []prompt.Question {
	return []prompt.Question{
		{
			Name:    qProjectName,
			Kind:    prompt.Text,
			Message: func(prompt.Answers) string { return "Project name:" },
			Initial: func(prompt.Answers) string { return w.defaultDir },
			Skip:    func(prompt.Answers) bool { return w.argTarget != "" },
		},
		{
			Name: qOverwrite,
			Kind: prompt.Toggle,
			Message: func(a prompt.Answers) string {
				target := w.targetDir(a)
				subject := fmt.Sprintf("Target directory %q", target)
				if target == "." {
					subject = "Current directory"
				}
				return subject + " is not empty. Remove existing files and continue?"
			},
			Initial: func(prompt.Answers) string { return "no" },
			Skip:    func(a prompt.Answers) bool { return !w.needsOverwrite(a) },
			After: func(a prompt.Answers) error {
				if !a.Bool(qOverwrite) {
					return prompt.ErrCancelled
				}
				return nil
			},
		},
		{
			Name:    qPackageName,
			Kind:    prompt.Text,
			Message: func(prompt.Answers) string { return "Package name:" },
			Initial: func(a prompt.Answers) string { return project.ToValidPackageName(w.projectName(a)) },
			Skip:    func(a prompt.Answers) bool { return project.IsValidPackageName(w.projectName(a)) },
			Validate: func(name string) error {
				if !project.IsValidPackageName(name) {
					return errInvalidPackageName
				}
				return nil
			},
		},
		{
			Name:    qTypeScript,
			Kind:    prompt.Toggle,
			Message: func(prompt.Answers) string { return "Use TypeScript?" },
			Initial: func(prompt.Answers) string { return "no" },
			Skip:    func(prompt.Answers) bool { return !w.askTemplate },
		},
	}
}

// packageName is the name written to package.json.
func (w wizard) packageName(a prompt.Answers) string {
	if name := a.String(qPackageName); name != "" {
		return name
	}
	return w.projectName(a)
}
