package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/testswitch/internal/errors"
	"github.com/thoreinstein/testswitch/internal/logging"
)

// Format specifies the output format for reports.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Reporter writes a Result as text or JSON.
type Reporter struct {
	out    io.Writer
	format Format

	ok, err, warn, info, dim *color.Color
}

// NewReporter creates a Reporter. Text output is coloured only when out
// supports it.
func NewReporter(out io.Writer, format Format) *Reporter {
	r := &Reporter{
		out:    out,
		format: format,
		ok:     color.New(color.FgGreen),
		err:    color.New(color.FgRed),
		warn:   color.New(color.FgYellow),
		info:   color.New(color.FgCyan),
		dim:    color.New(color.FgHiBlack),
	}
	useColor := logging.SupportsColor(out)
	for _, c := range []*color.Color{r.ok, r.err, r.warn, r.info, r.dim} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Report writes result.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}
	if r.format == FormatJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(result), "encoding JSON report")
	}
	r.reportText(result)
	return nil
}

func (r *Reporter) reportText(result *Result) {
	source := result.Source
	if source == "" {
		source = "defaults"
	}
	fmt.Fprintf(r.out, "Checked %s\n", source)

	errs := result.BySeverity(SeverityError)
	warns := result.BySeverity(SeverityWarning)
	notes := result.BySeverity(SeverityInfo)

	if len(errs) == 0 && len(warns) == 0 {
		fmt.Fprintln(r.out, r.ok.Sprint("✓ Conventions look good"))
	} else {
		var summary []string
		if len(errs) > 0 {
			summary = append(summary, r.err.Sprintf("%d error(s)", len(errs)))
		}
		if len(warns) > 0 {
			summary = append(summary, r.warn.Sprintf("%d warning(s)", len(warns)))
		}
		fmt.Fprintf(r.out, "Found %s\n", strings.Join(summary, ", "))
	}

	r.section("Errors", errs, r.err)
	r.section("Warnings", warns, r.warn)
	r.section("Notes", notes, r.info)
}

func (r *Reporter) section(title string, issues []Issue, c *color.Color) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(r.out, "\n%s:\n", title)
	for _, i := range issues {
		var sb strings.Builder
		sb.WriteString("  • ")
		if i.Field != "" {
			sb.WriteString(c.Sprint(i.Field))
			sb.WriteString(": ")
		}
		sb.WriteString(i.Message)
		if i.Value != nil {
			sb.WriteString(r.dim.Sprintf(" [%q]", fmt.Sprint(i.Value)))
		}
		fmt.Fprintln(r.out, sb.String())
	}
}
