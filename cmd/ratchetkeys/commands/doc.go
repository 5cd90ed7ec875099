// Package commands defines the ratchetkeys CLI and wires dependencies for subcommands.
//
// Commands
//
//   - extract   Print the raw key carried by a key blob
//   - keyid     Print the 8-byte key-pair id of a key blob
//   - inspect   Report the detected format and whether the blob is a valid key
//   - generate  Create a key pair and write it as DER or PEM envelopes
//   - import    Add a key blob to the local keyring
//   - list      List keyring entries
//   - show      Print one keyring entry
//   - remove    Delete a keyring entry
//
// # Implementation
//
// The root command resolves Config from flags and environment and builds the
// dependency graph (params, extractor, key-id deriver, keyring, logger)
// before any subcommand runs, so handlers share one immutable set of
// parameters.
package commands
