// Package bdd provides a small reference-counted Binary/Algebraic Decision
// Diagram manager: a unique table with Boolean and existential-abstraction
// operations over BDDs, and arithmetic operations over integer-leaf ADDs.
//
// This is the "external, consumed" decision-diagram library the pattern
// database core builds on. No suitable third-party BDD/ADD library exists
// anywhere in the example pack or the wider Go ecosystem, so it is
// implemented here directly, following the unique-table/reduction-rule
// shape of a zero-suppressed decision diagram generalized to ordinary BDD
// and ADD reduction rules.
package bdd

import "errors"

var (
	// ErrInvalidVar indicates a variable index is out of the manager's range.
	ErrInvalidVar = errors.New("bdd: invalid variable")

	// ErrMemoryLimit indicates the configured node-table limit was exceeded.
	ErrMemoryLimit = errors.New("bdd: node table memory limit exceeded")
)
