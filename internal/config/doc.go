// Package config loads the optional HCL configuration file of the
// digraph-animator command.
//
// A configuration file sets defaults that command-line flags override:
//
//	log_level    = "debug"
//	log_format   = env.DIGRAPH_LOG_FORMAT
//	input_format = "yaml"
//
//	compatibility = {
//	  Extension = ">=1, <2"
//	}
//
// Expressions can read the process environment through the env variable.
// The compatibility map is merged over the built-in rules.
package config
