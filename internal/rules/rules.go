// Package rules holds the versioned rule tables behind every heuristic in
// the pipeline. Each heuristic reads exactly one table defined here; call
// sites never re-derive patterns locally.
package rules

// Version identifies the rule tables in effect. Bump when any table changes
// in a way that alters produced scores.
const Version = "v1"
