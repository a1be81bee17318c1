package cli

import (
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lucasnoah/nodediag/internal/config"
	"github.com/lucasnoah/nodediag/internal/engine"
	"github.com/lucasnoah/nodediag/internal/report"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func reportOptions(w io.Writer, cfg config.Config) report.Options {
	opts := report.Options{
		Width:      report.DefaultWidth,
		SourceLine: report.CrimeScene,
	}
	switch cfg.Color {
	case config.ColorAlways:
		opts.Color = true
	case config.ColorAuto:
		opts.Color = isTerminal(w)
	}
	if f, ok := w.(*os.File); ok && isTerminal(w) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 20 {
			opts.Width = min(width, 100)
		}
	}
	return opts
}

// writeDiagnosis renders d, or the no-details notice when d is nil.
func writeDiagnosis(w io.Writer, cfg config.Config, d *engine.Diagnosis, exitCode int, log *zap.Logger) error {
	if d != nil {
		log.Debug("classified",
			zap.String("pattern", string(d.Pattern)),
			zap.Int("rule", d.Rule),
			zap.String("kind", d.Record.Kind),
			zap.String("system_code", d.Record.SystemCode),
		)
	}
	if cfg.Format == config.FormatJSON {
		return report.JSON(w, d, exitCode)
	}
	opts := reportOptions(w, cfg)
	if d == nil {
		return report.NoDetails(w, exitCode, opts)
	}
	return report.Text(w, *d, exitCode, opts)
}
