// Package source reads arrays of raw annotation records from JSON or YAML
// documents.
//
// Numbers are kept exact: JSON numbers decode to json.Number and YAML
// integers to int, so numeric ids survive unchanged into the animator.
package source
