// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// BatchState is the position of a batch operation in its lifecycle:
//
//	Idle → Staging → Merging → MutatingPlugins → Stamping → Committed
//
// RolledBack is reachable from every non-Idle state. Committed and
// RolledBack are terminal.
type BatchState int

const (
	StateIdle BatchState = iota
	StateStaging
	StateMerging
	StateMutatingPlugins
	StateStamping
	StateCommitted
	StateRolledBack
)

func (s BatchState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStaging:
		return "staging"
	case StateMerging:
		return "merging/inserting"
	case StateMutatingPlugins:
		return "mutating plugins"
	case StateStamping:
		return "stamping"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled back"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s BatchState) Terminal() bool {
	return s == StateCommitted || s == StateRolledBack
}

// next computes the state after a step that requires want. Mutation actions
// stage and merge their own rows, so both are accepted while plugins run
// without leaving StateMutatingPlugins.
func (s BatchState) next(want BatchState) (BatchState, bool) {
	if s.Terminal() {
		return s, false
	}
	if s == StateMutatingPlugins && (want == StateStaging || want == StateMerging) {
		return s, true
	}
	if want < s {
		return s, false
	}
	return want, true
}
