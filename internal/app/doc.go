// Package app wires application dependencies for the CLI.
//
// It resolves the curve and key-id hash named in Config, builds the shared
// ratchetkey.Params once, and exposes the extractor, key-id deriver, keyring
// store and logger via the Wire struct for commands to use.
package app
