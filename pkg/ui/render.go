package ui

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/vitex/pkg/errors"
	"github.com/arthur-debert/vitex/pkg/style"
	"github.com/arthur-debert/vitex/pkg/types"
	"gopkg.in/yaml.v3"
)

// Renderer writes command results in one format
type Renderer struct {
	w      io.Writer
	format Format
	markup *style.MarkupParser
}

// NewRenderer creates a renderer. FormatAuto must be resolved by the caller;
// it is treated as plain text.
func NewRenderer(w io.Writer, format Format) *Renderer {
	return &Renderer{
		w:      w,
		format: format,
		markup: style.NewMarkupParser(format != FormatTerminal),
	}
}

// Format returns the renderer's output format
func (r *Renderer) Format() Format {
	return r.format
}

// structured writes v as JSON or YAML and reports whether it did
func (r *Renderer) structured(v interface{}) (bool, error) {
	if !r.format.Structured() {
		return false, nil
	}

	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return true, errors.Wrap(err, errors.ErrInternal, "failed to encode JSON output")
		}
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML output")
		}
		if err := enc.Close(); err != nil {
			return true, errors.Wrap(err, errors.ErrInternal, "failed to encode YAML output")
		}
	}
	return true, nil
}

func (r *Renderer) println(markup string) {
	fmt.Fprintln(r.w, r.markup.Render(markup))
}

func modeTag(mode types.SourcingMode) string {
	if mode == types.SourcingGit {
		return "[git]git[/git]"
	}
	return "[local]local[/local]"
}

// RenderTemplates writes the templates list
func (r *Renderer) RenderTemplates(result *types.ListTemplatesResult) error {
	if done, err := r.structured(result); done {
		return err
	}

	if len(result.Templates) == 0 {
		r.println("[muted]No templates configured[/muted]")
		return nil
	}

	width := 0
	for _, t := range result.Templates {
		if len(t.ID) > width {
			width = len(t.ID)
		}
	}

	for _, t := range result.Templates {
		location := t.Path
		if t.Mode == types.SourcingGit {
			location = t.Repository
			if t.PathPrefix != "" {
				location += " (" + t.PathPrefix + ")"
			}
		}

		status := ""
		if !t.Installed {
			if t.Mode == types.SourcingGit {
				status = " [warning]not synced[/warning]"
			} else {
				status = " [warning]missing[/warning]"
			}
		}

		r.println(fmt.Sprintf("[bold]%-*s[/bold]  %s  [path]%s[/path]%s", width, t.ID, modeTag(t.Mode), location, status))
	}
	return nil
}

// RenderNewProject writes the outcome of the new command
func (r *Renderer) RenderNewProject(result *types.NewProjectResult) error {
	if done, err := r.structured(result); done {
		return err
	}

	for _, w := range result.Warnings {
		r.println("[warning]warning:[/warning] " + w)
	}
	r.println(fmt.Sprintf("[success]Created[/success] [path]%s[/path] from template [bold]%s[/bold]", result.Path, result.TemplateID))
	return nil
}

// RenderSync writes the outcome of the templates sync command
func (r *Renderer) RenderSync(result *types.SyncTemplatesResult) error {
	if done, err := r.structured(result); done {
		return err
	}

	if len(result.Templates) == 0 {
		r.println("[muted]No git templates to synchronize[/muted]")
		return nil
	}

	for _, t := range result.Templates {
		r.println(fmt.Sprintf("[bold]%s[/bold]: %s", t.ID, syncActionMarkup(t.Action)))
		if t.Action == "updated" && t.Output != "" {
			for _, line := range strings.Split(t.Output, "\n") {
				fmt.Fprintln(r.w, style.Indent(r.markup.Render("[muted]"+line+"[/muted]"), 1))
			}
		}
	}
	r.println(fmt.Sprintf("[success]Updated and scanned %d template(s). No issues detected.[/success]", len(result.Templates)))
	return nil
}

func syncActionMarkup(action string) string {
	switch action {
	case "cloned":
		return "[success]cloned[/success]"
	case "updated":
		return "[info]updated[/info]"
	default:
		return "[muted]" + action + "[/muted]"
	}
}

// RenderValidate writes the outcome of the templates validate command
func (r *Renderer) RenderValidate(result *types.ValidateTemplatesResult) error {
	if done, err := r.structured(result); done {
		return err
	}

	for _, id := range result.Validated {
		r.println("[success]✓[/success] " + id)
	}
	r.println(fmt.Sprintf("[success]%d template(s) valid[/success]", len(result.Validated)))
	return nil
}

// RenderPurge writes the outcome of the templates purge command
func (r *Renderer) RenderPurge(result *types.PurgeResult) error {
	if done, err := r.structured(result); done {
		return err
	}

	if !result.Removed {
		r.println("[muted]No cloned templates at[/muted] [path]" + result.Path + "[/path]")
		return nil
	}
	r.println("[success]Deleted cloned templates[/success] [path]" + result.Path + "[/path]")
	return nil
}

// RenderError writes err for a human reader
func (r *Renderer) RenderError(err error) {
	msg := err.Error()
	var vErr *errors.VitexError
	if stderrors.As(err, &vErr) {
		msg = vErr.Message
		if vErr.Wrapped != nil {
			msg += ": " + vErr.Wrapped.Error()
		}
	}

	lines := strings.Split(msg, "\n")
	r.println("[error]error:[/error] " + lines[0])
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "HINT:") {
			r.println("[info]" + line + "[/info]")
			continue
		}
		r.println(line)
	}
}
