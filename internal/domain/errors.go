package domain

import (
	"fmt"
)

// TransportError is a failure fetching or decoding data from the articles API.
// StatusCode is zero when no response was received.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type StorageFailureKind string

const (
	StorageFailureSave     StorageFailureKind = "save"
	StorageFailureDelete   StorageFailureKind = "delete"
	StorageFailureRetrieve StorageFailureKind = "retrieve"
)

// StorageFailure is a read or write failure from a bookmark store.
type StorageFailure struct {
	Kind StorageFailureKind
	Err  error
}

func (e *StorageFailure) Error() string {
	var msg string
	switch e.Kind {
	case StorageFailureSave:
		msg = "failed to save data to persistent storage"
	case StorageFailureDelete:
		msg = "failed to delete object from persistent storage"
	case StorageFailureRetrieve:
		msg = "there was a problem loading your data from persistent storage"
	default:
		msg = "persistent storage failure"
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *StorageFailure) Unwrap() error {
	return e.Err
}
