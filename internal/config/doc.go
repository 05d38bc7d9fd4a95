// Package config defines the format-agnostic case model for the application,
// the Loader interface implemented by each case-file format, and the Case
// record handed to the simulator.
//
// A config.Model is what a case file says. A config.Case is what the
// simulator receives: it is assembled by a Builder in a fixed order and is
// never modified once built. Concrete loaders, such as for HCL or YAML, are
// provided in separate packages.
package config
