// Package rules flattens the nested ingress table (application -> protocol ->
// ports) into uniquely keyed firewall rules. The key doubles as the
// reconciliation identity of the rule resource.
package rules

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrDuplicateKey reports two table entries collapsing to the same rule key.
var ErrDuplicateKey = errors.New("duplicate rule key")

// PortSpec is a single port opening declared in the desired-state table.
type PortSpec struct {
	Port        int
	Description string
}

// ProtocolMap maps a protocol name ("tcp" or "udp") to its port openings.
type ProtocolMap map[string][]PortSpec

// Table is the full desired-state ingress table, keyed by application name.
type Table map[string]ProtocolMap

// Rule is one flattened ingress rule.
type Rule struct {
	Key         string
	App         string
	Protocol    string
	Port        int
	Description string
}

// Flatten expands the table into one Rule per (app, protocol, port) triple
// with key app_protocol_port. Iteration is sorted so the output order is
// stable across runs. Two entries collapsing to the same key fail with
// ErrDuplicateKey naming the key.
func Flatten(table Table) ([]Rule, error) {
	seen := make(map[string]struct{})
	var flat []Rule

	for _, app := range slices.Sorted(maps.Keys(table)) {
		protocols := table[app]
		for _, protocol := range slices.Sorted(maps.Keys(protocols)) {
			for _, spec := range protocols[protocol] {
				rule := Rule{
					Key:         fmt.Sprintf("%s_%s_%d", app, protocol, spec.Port),
					App:         app,
					Protocol:    protocol,
					Port:        spec.Port,
					Description: spec.Description,
				}
				if _, ok := seen[rule.Key]; ok {
					return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, rule.Key)
				}
				seen[rule.Key] = struct{}{}
				flat = append(flat, rule)
			}
		}
	}

	return flat, nil
}
