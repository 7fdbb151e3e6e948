// Package inmemoryitems provides an in-memory implementation of the
// itemstore.Store interface. It is designed for runs whose items fit
// comfortably in memory, which is every run the animator performs.
package inmemoryitems
