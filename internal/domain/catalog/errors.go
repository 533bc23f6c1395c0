package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrInvalidTemplate = errors.New("invalid template definition")
	ErrDuplicateID     = errors.New("duplicate template id")
	ErrUnknownCategory = errors.New("unknown template category")
	ErrLoadCatalog     = errors.New("failed to load template catalog")
)
