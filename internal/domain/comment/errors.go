package comment

import "errors"

var ErrAssetNotFound = errors.New("asset not found")
