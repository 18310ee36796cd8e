package report

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/web3tea/pagesync/syncer"
)

// ConsoleWriter renders a run summary as a table on stdout.
type ConsoleWriter struct {
	colorEnabled bool
}

type ConsoleOption func(*ConsoleWriter)

// WithColorOutput enables or disables colored output.
func WithColorOutput(enabled bool) ConsoleOption {
	return func(w *ConsoleWriter) {
		w.colorEnabled = enabled
	}
}

func NewConsoleWriter(options ...ConsoleOption) *ConsoleWriter {
	w := &ConsoleWriter{colorEnabled: true}
	for _, option := range options {
		option(w)
	}
	return w
}

// Write prints the run summary.
func (w *ConsoleWriter) Write(result *syncer.Result) {
	okColor := color.New(color.FgGreen, color.Bold).SprintFunc()
	countColor := color.New(color.FgCyan).SprintFunc()
	if !w.colorEnabled {
		okColor = fmt.Sprint
		countColor = fmt.Sprint
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.Style().Title.Align = text.AlignCenter
	t.SetTitle("sync run")

	t.AppendRows([]table.Row{
		{"Status", okColor(result.Status)},
		{"Delta records", countColor(result.DeltaRecords)},
		{"Updated", countColor(result.Updated)},
		{"Appended", countColor(result.Appended)},
		{"Last sync", result.LastSync},
		{"Duration (ms)", result.DurationMs},
	})
	t.Render()
}
