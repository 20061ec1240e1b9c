package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var ErrPersistence = errors.New("persistence error")

// PersistenceError carrega a operação, a tabela e o código do Postgres quando houver
type PersistenceError struct {
	Op    string
	Table string
	Code  string
	Err   error
}

func (e *PersistenceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s %s: %v (code: %s)", e.Op, e.Table, e.Err, e.Code)
	}

	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func newPersistenceError(op, table string, err error) error {
	pErr := &PersistenceError{Op: op, Table: table, Err: err}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		pErr.Code = string(pqErr.Code)
	}

	return pErr
}
