// Package queries contains the read side. Handlers run plain SQL against the
// tables written by the postgres adapter and return flat response structs;
// they never load aggregates.
package queries
