// Package rules generates the vinyl-backend recording and alert rules as
// Prometheus Operator PrometheusRule resources.
package rules

const (
	apiVersion = "monitoring.coreos.com/v1"
	kind       = "PrometheusRule"

	// Label the cluster's Prometheus selects rule resources by.
	ruleSelectorLabel = "prometheus"
	ruleSelectorValue = "system-rules-prometheus"
)

// PrometheusRule is the resource written to prometheus/<name>.yaml.
type PrometheusRule struct {
	APIVersion string     `yaml:"apiVersion"`
	Kind       string     `yaml:"kind"`
	Metadata   ObjectMeta `yaml:"metadata"`
	Spec       RuleSpec   `yaml:"spec"`
}

// ObjectMeta carries the resource name and selector labels.
type ObjectMeta struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// RuleSpec holds the rule groups.
type RuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is evaluated by Prometheus as a unit, every Interval.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule sets exactly one of Record or Alert.
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// newResource wraps a single rule group in a resource of the same name.
func newResource(name, interval string, rules []Rule) PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: ObjectMeta{
			Name:   name,
			Labels: map[string]string{ruleSelectorLabel: ruleSelectorValue},
		},
		Spec: RuleSpec{
			Groups: []RuleGroup{{Name: name, Interval: interval, Rules: rules}},
		},
	}
}
