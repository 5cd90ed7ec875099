package types

// Format names the encoding a key blob was recognised as.
type Format int

const (
	FormatUnknown Format = iota
	FormatRaw            // bare key of the curve's native length
	FormatDER            // SubjectPublicKeyInfo / PKCS#8 envelope
	FormatPEM            // DER envelope inside PEM armor
)

// String returns the lower-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatDER:
		return "der"
	case FormatPEM:
		return "pem"
	default:
		return "unknown"
	}
}
