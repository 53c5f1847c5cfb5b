package gormrepo

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pulabank/corebank/pkg/repository"
)

// mapError converts gorm errors to the repository contract errors.
// This keeps database error shapes inside the gateway; callers only
// ever see the repository sentinels. The session must be opened with
// TranslateError so driver errors surface as gorm sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", repository.ErrDuplicate, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", repository.ErrNotFound, err)
	}
	return err
}
