package persistent

import (
	"errors"
	"fmt"

	"vidtube/internal/entity"

	"gorm.io/gorm"
)

// translateErr maps gorm errors onto the service error kinds. Unique
// violations become ErrDuplicateEdge (the toggle engine's race signal),
// missing rows become ErrNotFound, anything else is a store failure.
func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entity.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return entity.ErrDuplicateEdge
	default:
		return fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}
}
