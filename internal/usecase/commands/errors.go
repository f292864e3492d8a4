package commands

import (
	"expense-matching/internal/infra"
)

// asNotFound replaces a repository NOT_FOUND with the given domain error.
func asNotFound(err error, domainErr error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return domainErr
	}
	return err
}
