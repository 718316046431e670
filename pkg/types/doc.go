// Package types defines the interfaces and result types shared between
// chromasync's packages: the filesystem abstraction used by every
// component that touches disk, the directory provider and the results
// returned by commands.
package types
