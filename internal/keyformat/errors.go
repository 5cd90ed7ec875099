package keyformat

import "errors"

var (
	ErrTruncated          = errors.New("keyformat: truncated or malformed DER")
	ErrTrailingData       = errors.New("keyformat: trailing data after envelope")
	ErrUnsupportedVersion = errors.New("keyformat: unsupported private key version")
	ErrParametersPresent  = errors.New("keyformat: algorithm parameters must be absent")
	ErrNotPEM             = errors.New("keyformat: no PEM block found")
	ErrPEMType            = errors.New("keyformat: unexpected PEM block type")
)
