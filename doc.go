// Package symtensor computes dominant eigenpairs of super-symmetric
// (fully symmetric) tensors — the higher-order generalization of the
// matrix eigenproblem, as used in spectral hypergraph analysis.
//
// 🚀 What is symtensor?
//
//	A compact numeric toolkit that brings together:
//		• Sparse storage: one canonical (sorted tuple, weight) entry per
//		  symmetry class — no combinatorial blow-up
//		• Contraction algebra: tensor-times-vector (the k-mode analog of A·x)
//		  and tensor-times-vector-to-matrix, multiplicity-aware
//		• SSHOPM: the shifted symmetric higher-order power method
//		• Dynamical solver: forward-Euler integration of an ODE whose fixed
//		  point is a tensor eigenvector
//		• HOSVD seeding: informed starting vectors via partial SVD
//
// ✨ Why choose symtensor?
//
//   - Deterministic – stable iteration orders, no global state, no randomness
//   - Explicit errors – sentinel set per package, matched via errors.Is
//   - Pluggable collaborators – swap the matrix eigensolver behind the
//     dynamical system without touching the integration loop
//   - Observable – injectable progress observer, silent by default
//
// Everything is organized under five subpackages:
//
//	tensor/   — symmetric store, multiplicity engine, contraction kernels,
//	            dense materialization & mode-1 unfolding
//	sshopm/   — shifted symmetric higher-order power method
//	dynsys/   — continuous-time (forward-Euler) eigensolver
//	hosvd/    — flatten + partial-SVD seeding utility
//	progress/ — iteration observer with an optional structured-log sink
//
// Quick sketch: the order-3 tensor with a single edge {1,2,3} stands for
// weight w on all six permutations of (1,2,3); contraction against x folds
// every permutation back in with one multiplicity-scaled term.
//
// Dive into each package's doc.go for the algorithm walkthroughs, error
// contracts and worked examples.
//
//	go get github.com/katalvlaran/symtensor
package symtensor
