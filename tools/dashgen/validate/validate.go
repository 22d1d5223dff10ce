// Package validate checks generated dashboards and rules for PromQL syntax
// errors and references to metrics the service does not export.
package validate

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/clareta27/vinyl-backend/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings are
// informational.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// Expr parses a PromQL expression and checks every selected metric name
// against known.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: invalid PromQL %q: %v", where, expr, err))
		return res
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		switch {
		case vs.Name == "":
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: selector without metric name in %q", where, expr))
		case !known[vs.Name]:
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown metric %q", where, vs.Name))
		}
		return nil
	})
	return res
}

// Dashboard validates every Prometheus target in every panel, including
// panels nested in rows.
func Dashboard(d dashboard.Dashboard, known map[string]bool) Result {
	var res Result
	for _, p := range d.Panels {
		if p.Panel != nil {
			res.merge(panel(*p.Panel, known))
		}
		if p.RowPanel != nil {
			for _, inner := range p.RowPanel.Panels {
				res.merge(panel(inner, known))
			}
		}
	}
	return res
}

func panel(p dashboard.Panel, known map[string]bool) Result {
	var res Result
	title := "panel"
	if p.Title != nil {
		title = fmt.Sprintf("panel %q", *p.Title)
	}
	if len(p.Targets) == 0 {
		res.Warnings = append(res.Warnings, title+": no targets")
	}
	for _, t := range p.Targets {
		var expr string
		switch q := t.(type) {
		case *prometheus.Dataquery:
			expr = q.Expr
		default:
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: non-Prometheus target %T", title, t))
			continue
		}
		res.merge(Expr(title, expr, known))
	}
	return res
}

// Rules validates every rule expression.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			res.merge(Expr(fmt.Sprintf("rule %q", name), r.Expr, known))
		}
	}
	return res
}
