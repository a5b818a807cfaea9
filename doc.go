// Package permsearch explores combinatorial spaces of ±1 matrices under
// structural constraints and computes exact matrix permanents, in pursuit
// of the Kräuter conjecture on the minimum positive permanent.
//
// 🔎 What is permsearch?
//
//	A deterministic, single-threaded search engine that brings together:
//		• Exact permanents: Ryser's formula with Gray-code updates, O(2^n·n)
//		• A naive O(n!) evaluator kept as a cross-validation oracle
//		• Five ±1 matrix families: circulant, Toeplitz, triangle Hankel,
//		  free upper-triangular, upper-triangular Toeplitz
//		• Lazy, restartable index-set generators (cardinality-ascending)
//		• A streaming exhaustive-search driver with early termination,
//		  cooperative interruption and reproducible extremal statistics
//		• The Kräuter conjecture oracle 2^(n−⌊log₂(n+1)⌋)
//
// ✨ Design highlights
//
//   - Exact arithmetic — permanents are math/big integers, never wrapped
//   - Pure Go library core — the CLI under cmd/ is the only I/O surface
//   - Strict sentinels — every failure mode is a package-level error
//     matched via errors.Is
//   - Deterministic enumeration — smaller index sets are always visited
//     before larger ones, so sparse patterns are reached first
//
// The module is organized as one package per concern:
//
//	matrices/  — ±1 matrix model, family constructors, set notation parser
//	subsets/   — index-set type and exhaustive subset sequences
//	permanent/ — permanent (naive / Ryser) and determinant evaluators
//	krauter/   — conjecture target oracle
//	search/    — streaming search driver, conventions, sinks
//	cmd/       — permsearch CLI (eval, target, search)
//
// Quick example:
//
//	m, _ := matrices.NewHankelTriangular(6, subsets.New(0, 2, 4, 5))
//	p, _ := permanent.Ryser(m)
//	fmt.Println(p) // exact permanent of H_{6,S}
//
//	go get github.com/krauterlab/permsearch
package permsearch
