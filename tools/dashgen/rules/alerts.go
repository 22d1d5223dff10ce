package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// vinyl-backend operational monitoring.
func AlertRules() PrometheusRule {
	return newResource("vinyl-alerts", "", []Rule{
		{
			Alert:  "VinylDown",
			Expr:   `absent(up{job="vinyl-backend"})`,
			For:    "2m",
			Labels: severity("critical"),
			Annotations: map[string]string{
				"summary":     "Vinyl backend is down",
				"description": "The vinyl-backend job has been absent for more than 2 minutes.",
			},
		},
		{
			Alert:  "VinylNotReady",
			Expr:   `vinyl_readyz_up == 0`,
			For:    "5m",
			Labels: severity("critical"),
			Annotations: map[string]string{
				"summary":     "Vinyl backend cannot obtain an eBay access token",
				"description": "The readiness probe has failed for 5 minutes. Check the eBay refresh token.",
			},
		},
		{
			Alert:  "VinylHighErrorRate",
			Expr:   `sum(vinyl:http_errors:rate5m) / sum(vinyl:http_requests:rate5m) > 0.05`,
			For:    "5m",
			Labels: severity("warning"),
			Annotations: map[string]string{
				"summary":     "High HTTP error rate on vinyl backend",
				"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
			},
		},
		{
			Alert:  "VinylUpstreamErrors",
			Expr:   `sum(vinyl:upstream_errors:rate5m) / sum(vinyl:upstream_calls:rate5m) > 0.2`,
			For:    "10m",
			Labels: severity("warning"),
			Annotations: map[string]string{
				"summary":     "eBay API calls are failing",
				"description": "More than 20% of eBay API calls have failed for 10 minutes.",
			},
		},
		{
			Alert:  "VinylTokenRefreshFailing",
			Expr:   `increase(vinyl_token_refresh_failures_total[15m]) > 0`,
			For:    "0m",
			Labels: severity("warning"),
			Annotations: map[string]string{
				"summary":     "eBay token renewal failed",
				"description": "The refresh token grant was rejected or unreachable in the last 15 minutes.",
			},
		},
		{
			Alert:  "VinylQuotaHigh",
			Expr:   `vinyl_upstream_daily_usage > 4000`,
			For:    "5m",
			Labels: severity("warning"),
			Annotations: map[string]string{
				"summary":     "eBay API daily usage is above 80% of the budget",
				"description": "Daily eBay API usage has exceeded 4000 calls (limit is 5000).",
			},
		},
		{
			Alert:  "VinylLimitReached",
			Expr:   `increase(vinyl_upstream_daily_limit_hits_total[5m]) > 0`,
			For:    "0m",
			Labels: severity("critical"),
			Annotations: map[string]string{
				"summary":     "eBay API daily limit has been reached",
				"description": "The daily eBay call budget is spent. Discovery requests return 429 until it resets.",
			},
		},
	})
}

func severity(s string) map[string]string {
	return map[string]string{"severity": s}
}
