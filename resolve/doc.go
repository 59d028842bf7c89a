// Package resolve substitutes ${NAME:default} environment placeholders in
// the string leaves of a raw document. Lookups go through an injectable Env
// so tests never depend on real process state; fallbacks to the default are
// logged with the default redacted for secret fields.
package resolve
