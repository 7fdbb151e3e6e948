// Package ident provides the identifier type shared by every record of an
// animation run, and the per-run Allocator that invents identifiers for
// records that do not declare one.
//
// User identifiers come from the input as strings or numbers. Synthetic
// identifiers are tagged with the allocating run and a sequence number, so
// they can never be mistaken for, or collide with, a user value.
package ident
