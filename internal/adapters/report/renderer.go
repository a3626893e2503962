// Package report renders persistence unit resolution reports.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/ormbridge/internal/core/domain"
	"go.trai.ch/ormbridge/internal/core/ports"
	"go.trai.ch/ormbridge/internal/ui/output"
	"go.trai.ch/ormbridge/internal/ui/style"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer writes reports to an output stream.
type Renderer struct {
	mu sync.Mutex
	w  io.Writer
}

// New creates a Renderer writing to stdout.
func New() *Renderer {
	return &Renderer{w: os.Stdout}
}

// SetOutput changes the destination of subsequent reports.
func (r *Renderer) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.w = w
}

// Render writes reports in the requested format.
func (r *Renderer) Render(reports []domain.UnitReport, format domain.OutputFormat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	switch format {
	case domain.OutputText, "":
		err = r.renderText(reports)
	case domain.OutputJSON:
		err = r.renderJSON(reports)
	case domain.OutputYAML:
		err = r.renderYAML(reports)
	default:
		return zerr.With(domain.ErrInvalidOutputFormat, "format", string(format))
	}

	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "format", string(format))
	}
	return nil
}

func (r *Renderer) renderJSON(reports []domain.UnitReport) error {
	if reports == nil {
		reports = []domain.UnitReport{}
	}
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = r.w.Write(data)
	return err
}

func (r *Renderer) renderYAML(reports []domain.UnitReport) error {
	if reports == nil {
		reports = []domain.UnitReport{}
	}
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}
	return enc.Close()
}

func (r *Renderer) renderText(reports []domain.UnitReport) error {
	lg := output.NewRenderer(r.w)
	var (
		title   = lg.NewStyle().Foreground(style.Iris)
		key     = lg.NewStyle().Foreground(style.Slate)
		value   = lg.NewStyle().Foreground(style.Mist)
		enabled = lg.NewStyle().Foreground(style.Green)
		off     = lg.NewStyle().Foreground(style.Yellow)
	)

	var b strings.Builder
	for i, rep := range reports {
		if i > 0 {
			b.WriteString("\n")
		}

		icon, verdict := off.Render(style.Dot), off.Render("second level cache disabled")
		if rep.SecondLevelCache {
			icon, verdict = enabled.Render(style.Check), enabled.Render("second level cache enabled")
		}
		fmt.Fprintf(&b, "%s %s  %s\n", icon, title.Render(rep.ScopedName), verdict)

		line := func(k, v string) {
			fmt.Fprintf(&b, "  %s %s\n", key.Render(k+":"), value.Render(v))
		}
		line("shared cache mode", rep.SharedCacheMode.String())
		if rep.ForcedNone {
			fmt.Fprintf(&b, "  %s %s\n", off.Render(style.Warning), off.Render("platform does not support a second level cache"))
		}
		if rep.CacheLifecycle != "" {
			line("cache lifecycle", rep.CacheLifecycle)
		}
		line("regions by scoped name", yesNo(rep.RegionsByScopedName))
		line("management label", rep.ManagementLabel)
		line("fingerprint", rep.Fingerprint)

		keys := make([]string, 0, len(rep.Properties))
		for k := range rep.Properties {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "    %s %s %s\n", key.Render(k), key.Render("="), value.Render(rep.Properties[k]))
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
