package diagnostic

import (
	"fmt"

	"github.com/pterm/pterm"
)

// ConsoleSink renders diagnostics to the terminal with severity-coded
// colors, the same role pterm plays in the teacher corpus's compiler
// front end (ComedicChimera-chai/src/logging/display.go) printing
// colorized position/message lines as compilation proceeds.
type ConsoleSink struct{}

func (ConsoleSink) Report(d Diagnostic) {
	style := severityStyle(d.Severity)
	loc := pterm.NewStyle(pterm.FgGray).Sprintf("%s:%d:%d", d.Pos.File, d.Pos.Line, d.Pos.Column)
	fmt.Println(loc + " " + style.Sprintf("%s[%s]", d.Severity, d.Code) + ": " + d.Message)
}

func severityStyle(s Severity) *pterm.Style {
	switch s {
	case Error:
		return pterm.NewStyle(pterm.FgLightRed, pterm.Bold)
	case Warning:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgLightCyan)
	}
}

// PrintBanner prints a title banner ahead of a compile run, matching the
// teacher corpus's startup banner in ComedicChimera-chai/src/logging.
func PrintBanner(title string) {
	pterm.DefaultBigText.WithLetters(pterm.NewLettersFromStringWithStyle(title, pterm.NewStyle(pterm.FgLightGreen))).Render()
}

// PrintSuccess reports a successful compile with a green summary line.
func PrintSuccess(msg string) {
	pterm.NewStyle(pterm.FgLightGreen, pterm.Bold).Println(msg)
}
