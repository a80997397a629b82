// Package commands defines the wigner CLI.
//
// Commands
//
//   - 3j  j1 j2 j3 m1 m2 m3   Evaluate a Wigner 3-j symbol
//   - 6j  j1 j2 j3 j4 j5 j6   Evaluate a Wigner 6-j symbol
//
// Arguments accept decimals or fractions ("5/2", "-1/2"). Flags must come
// before the first quantum number, so negative values are never read as flags.
//
// # Configuration
//
// Defaults come from WIGNER_EPS, WIGNER_METHOD, WIGNER_OUTPUT,
// WIGNER_LOG_MODE and WIGNER_LOG_LEVEL; the persistent flags --eps,
// --method, --output and --log-level override them. Logs go to stderr,
// results to stdout.
package commands
