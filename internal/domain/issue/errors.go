package issue

import "errors"

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrIssueNotFound = errors.New("issue not found")
)
