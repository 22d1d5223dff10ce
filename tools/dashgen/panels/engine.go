package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CacheHitRatio returns a stat panel showing the response cache hit ratio
// over the last hour.
func CacheHitRatio() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Cache Hit Ratio").
		Description("Share of eBay lookups answered from the response cache").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(`vinyl:cache_hit_ratio:rate5m * 100`, "", "A")).
		Unit("percent").
		Thresholds(ThresholdsRedYellowGreen(20, 50)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// FanoutFailures returns a timeseries panel showing queries dropped from
// trending, recommendation and chart fan-outs.
func FanoutFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Fan-out Query Failures").
		Description("Per-query failures skipped inside multi-query operations").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			fmt.Sprintf("sum(rate(vinyl_fanout_query_failures_total{%s}[5m])) by (operation)", Job),
			"{{operation}}", "A",
		)).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SoldRecords returns a timeseries panel showing the median and p95 number
// of sold records summarized per price request.
func SoldRecords() *timeseries.PanelBuilder {
	expr := `histogram_quantile(%s, sum(rate(vinyl_sold_records_per_request_bucket{%s}[15m])) by (le))`
	return timeseries.NewPanelBuilder().
		Title("Sold Records / Request").
		Description("Deduplicated completed sales behind each price history and chart response").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(fmt.Sprintf(expr, "0.5", Job), "p50", "A")).
		WithTarget(PromQuery(fmt.Sprintf(expr, "0.95", Job), "p95", "B")).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
