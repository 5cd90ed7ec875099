package domain

import (
	interfaces "ratchetkeys/internal/domain/interfaces"
	types "ratchetkeys/internal/domain/types"
)

// KeyIDLen is the size of a key-pair identifier in bytes.
const KeyIDLen = types.KeyIDLen

// Format values re-exported for compact imports.
const (
	FormatUnknown = types.FormatUnknown
	FormatRaw     = types.FormatRaw
	FormatDER     = types.FormatDER
	FormatPEM     = types.FormatPEM
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Format       = types.Format
	KeyID        = types.KeyID
	KeyringEntry = types.KeyringEntry
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyExtractor = interfaces.KeyExtractor
	KeyIDDeriver = interfaces.KeyIDDeriver
	KeyringStore = interfaces.KeyringStore
)

// ParseKeyID decodes a hex key identifier.
func ParseKeyID(s string) (KeyID, error) { return types.ParseKeyID(s) }
