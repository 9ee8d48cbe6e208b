package signup

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrymomot/gameon/pkg/logger"
)

// Gate runs the aggregate check on submission and applies its side effects.
type Gate struct {
	engine *Engine
	panels PanelPort
	log    *slog.Logger
}

// NewGate returns a Gate. A nil log discards diagnostics.
func NewGate(engine *Engine, panels PanelPort, log *slog.Logger) *Gate {
	if engine == nil || panels == nil {
		panic("signup: gate requires an engine and a panel port")
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Gate{engine: engine, panels: panels, log: log}
}

// Submit validates f. On success the form panel is hidden, the confirmation
// panel shown and f reset. On failure nothing but the display changes.
func (g *Gate) Submit(ctx context.Context, f *Form) bool {
	out := g.engine.Evaluate(*f)
	if !out.Valid {
		g.log.DebugContext(ctx, "signup form rejected",
			logger.Component("signup_gate"),
			logger.Field(string(out.Failed)),
			logger.Kind(out.Result.Kind.String()),
			logger.Checked(len(out.Ran)),
		)
		return false
	}

	g.panels.Hide(PanelForm)
	g.panels.Show(PanelThanks)
	f.Reset()

	g.log.InfoContext(ctx, "signup form validated",
		logger.Component("signup_gate"),
		logger.Checked(len(out.Ran)),
	)
	return true
}
