// Package domain contains the pure core of tally.
//
// This package represents the innermost layer of the Clean Architecture. It
// has no dependencies on infrastructure concerns (file system, logging,
// configuration) and contains only pure computation and the sentinel errors
// shared across layer boundaries.
//
// # Design Principles
//
// Domain code is:
//   - Deterministic and side-effect free
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
