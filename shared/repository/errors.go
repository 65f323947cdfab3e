package repository

import (
	"errors"
	"skyline/shared/constant"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err carries a postgres unique_violation.
func IsUniqueViolation(err error) bool {
	return hasCode(err, constant.PqErrorCodeUniqueViolation)
}

func IsCheckViolation(err error) bool {
	return hasCode(err, constant.PqErrorCodeCheckViolation)
}

func hasCode(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}

	return false
}
