// Package simulator is the boundary to the external dynamic simulation
// engine. The engine is closed source; this package only hands it a command
// file describing a config.Case and waits for the process to finish.
package simulator
