package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newResource("vinyl-recording-rules", "1m", []Rule{
		{
			Record: "vinyl:http_requests:rate5m",
			Expr:   `sum(rate(vinyl_http_requests_total[5m])) by (path)`,
		},
		{
			Record: "vinyl:http_errors:rate5m",
			Expr:   `sum(rate(vinyl_http_requests_total{status=~"5.."}[5m])) by (path)`,
		},
		{
			Record: "vinyl:upstream_calls:rate5m",
			Expr:   `sum(rate(vinyl_upstream_calls_total[5m])) by (endpoint)`,
		},
		{
			Record: "vinyl:upstream_errors:rate5m",
			Expr:   `sum(rate(vinyl_upstream_calls_total{status!="200"}[5m])) by (endpoint)`,
		},
		{
			Record: "vinyl:cache_hit_ratio:rate5m",
			Expr: `sum(rate(vinyl_cache_lookups_total{result="hit"}[5m])) / ` +
				`sum(rate(vinyl_cache_lookups_total[5m]))`,
		},
	})
}
