// Package rggen samples the integer sequences that feed synthetic network
// generators: heavy-tailed degree sequences and clique-size sequences whose
// total matches a node membership sequence.
//
// Layout:
//
//	powerlaw/   - discrete power-law table, inverse-CDF draws, Sequence,
//	              CliqueSizes (exact-sum repair loop), chi-square Fit
//	cmd/rggen/  - command line front end (sequence, cliques, table)
//
// Quick example:
//
//	degrees, err := powerlaw.Sequence(1000, 1, 100, 2.5, powerlaw.WithSeed(42))
//	sizes, err := powerlaw.CliqueSizes(2, 20, 3, memberships, powerlaw.WithSeed(42))
//
// Graph assembly from these sequences (stub matching, clique filling) is left
// to the caller.
package rggen
