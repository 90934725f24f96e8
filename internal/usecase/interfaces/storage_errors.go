package interfaces

import "errors"

// ErrStorageUnavailable wraps connectivity-class failures from the durable
// store. Callers surface it as a transient server error; the memory
// implementation never produces it. Benign misses are zero values, not
// errors.
var ErrStorageUnavailable = errors.New("storage unavailable")
