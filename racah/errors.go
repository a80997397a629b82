package racah

import "errors"

// ErrUnknownMethod is returned by ParseMethod for an unrecognised backend name.
var ErrUnknownMethod = errors.New("racah: unknown evaluation method")
