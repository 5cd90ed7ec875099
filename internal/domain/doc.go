// Package domain defines core data models and interfaces shared across the module.
// It contains plain types (key ids, formats, keyring entries) and contracts
// (interfaces) only.
package domain
