// Package document models the raw value tree an external deserializer
// populates before placeholder resolution: every leaf is a string, an
// absence, or a nested document. Shape derives the expected tree for a
// schema; Build checks a decoded document against it.
package document
