package infrastructure

import (
	"errors"
	"fmt"
)

type StorageOperation string

const (
	OperationStat   StorageOperation = "stat"
	OperationSign   StorageOperation = "sign"
	OperationHealth StorageOperation = "health"
)

// StorageError はリモートオブジェクトストアの操作で発生したエラー
// 原因が domain.ErrObjectNotFound や domain.ErrAccessDenied の場合は errors.Is で判定できる
type StorageError struct {
	Backend   string
	Operation StorageOperation
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s error: %v", e.Backend, e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	var t *StorageError
	if errors.As(target, &t) {
		return e.Operation == t.Operation
	}
	return false
}

func NewStorageError(backend string, operation StorageOperation, err error) *StorageError {
	return &StorageError{
		Backend:   backend,
		Operation: operation,
		Err:       err,
	}
}

func IsStorageError(err error) bool {
	if err == nil {
		return false
	}
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}
