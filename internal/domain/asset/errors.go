package asset

import "errors"

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrNameTaken     = errors.New("asset name already taken for this author")
)
