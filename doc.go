// Package wigner is a pure-Go toolkit for the angular-momentum coupling
// coefficients of quantum mechanics, the Wigner 3-j and 6-j symbols,
// evaluated exactly and selection-rule aware.
//
// 🚀 What is wigner?
//
//	A small, deterministic, allocation-light library that brings together:
//		• Exact factorials on math/big with ε-aware integrality checks
//		• The triangle coefficient Δ(a,b,c)
//		• Selection rules that prove a symbol is zero before any arithmetic
//		• Racah closed forms for 3-j and 6-j symbols
//		• Two backends: exact rational (default) and log-gamma
//
// ✨ Why choose wigner?
//
//   - Correct first – rational arithmetic, no silent factorial overflow
//   - Typed errors – off-lattice input is an error, a vanishing symbol is 0
//   - Pure functions – no global state, safe for concurrent use
//   - Tunable – WithEpsilon and WithMethod functional options
//
// Under the hood, everything is organized under these subpackages:
//
//	numeric/: tolerance policy, factorials, compensated summation
//	racah/: triangle coefficient, Racah series, backends, options
//	threej/: Wigner 3-j symbol: selection rules, bounds, evaluation
//	sixj/: Wigner 6-j symbol: triad rules, bounds, evaluation
//	cmd/: the wigner command-line tool
//
// Quick example:
//
//	v, err := threej.Calculate(2, 2, 2, 0, 0, 0) // −√(2/35)
//	w, err := sixj.Calculate(2, 2, 2, 2, 2, 2)   // −3/70
//
//	go get github.com/katalvlaran/wigner
package wigner
