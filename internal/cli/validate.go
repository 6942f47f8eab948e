package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"

	"landingkit/internal/validate"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	issueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// jsonReport is the --json output of the validate command.
type jsonReport struct {
	Outcome    string   `json:"outcome"`
	Completion int      `json:"completion"`
	Satisfied  int      `json:"satisfiedCount"`
	Total      int      `json:"total"`
	Issues     []string `json:"issues"`
	Warnings   []string `json:"warnings"`
	Configured []string `json:"satisfied"`
}

func validateCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	site, err := loadSite(cfg)
	if err != nil {
		return err
	}

	rep := validate.Validate(site)
	out := c.App.Writer
	if c.Bool("json") {
		err = writeJSONReport(out, rep)
	} else {
		writeReport(out, rep)
	}
	if err != nil {
		return err
	}

	if code := rep.Outcome().ExitCode(); code != 0 {
		return cli.Exit("", code)
	}
	return nil
}

func writeJSONReport(w io.Writer, rep *validate.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Outcome:    rep.Outcome().String(),
		Completion: rep.Completion(),
		Satisfied:  len(rep.Satisfied),
		Total:      rep.Total(),
		Issues:     nonNil(rep.Issues),
		Warnings:   nonNil(rep.Warnings),
		Configured: nonNil(rep.Satisfied),
	})
}

// writeReport prints the three labelled sections, the completion line and
// the verdict.
func writeReport(w io.Writer, rep *validate.Report) {
	rule := ruleStyle.Render(strings.Repeat("=", 60))

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, headingStyle.Render("VALIDATION RESULTS"))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	section := func(title string, style lipgloss.Style, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintln(w, style.Bold(true).Render(title))
		for _, item := range items {
			fmt.Fprintln(w, "  "+style.Render(item))
		}
		fmt.Fprintln(w)
	}
	section("CRITICAL ISSUES (must fix):", issueStyle, rep.Issues)
	section("WARNINGS (recommended to fix):", warnStyle, rep.Warnings)
	section("CONFIGURED ITEMS:", okStyle, rep.Satisfied)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, headingStyle.Render(fmt.Sprintf("COMPLETION: %d%% (%d/%d)", rep.Completion(), len(rep.Satisfied), rep.Total())))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	switch rep.Outcome() {
	case validate.Incomplete:
		fmt.Fprintln(w, issueStyle.Render("Configuration INCOMPLETE - fix critical issues before deploying"))
	case validate.Acceptable:
		fmt.Fprintln(w, warnStyle.Render("Configuration ACCEPTABLE but has warnings"))
	default:
		fmt.Fprintln(w, okStyle.Render("Configuration COMPLETE - ready to deploy"))
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
