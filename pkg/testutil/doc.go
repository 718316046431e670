// Package testutil provides shared fixtures for chromasync tests:
// in-memory and isolated test environments, colorscheme documents and
// log capture.
package testutil
