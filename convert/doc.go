// Package convert turns a fully resolved raw document into its strongly
// typed target. Every field is parsed according to its schema kind; all
// failures are collected and reported together, and the target is only
// written when the whole document converted cleanly.
package convert
