// Package remotelp implements the remote optimization-service client of
// spec.md §6: it submits an XML job payload, polls for a result once a
// second, and hard-kills the wait after a configured timeout, returning
// a Killed sentinel rather than blocking forever. It is an I/O adapter
// around the core — the core's own lp.Solver contract is local and
// synchronous; this client is the "external solver" escape hatch spec.md
// §1 calls out as out of the core's scope.
package remotelp
