// Package executor runs the external post script after blueprints have
// been rendered.
//
// The script is executed directly, so it needs a shebang line and the
// executable bit. A missing script is not an error.
package executor
