package usecase

import "fmt"

// ErrPersistence marks repository failures so presentation code can map them
// to an internal-error response instead of echoing store details to clients.
var ErrPersistence = fmt.Errorf("chat use case persistence error")
