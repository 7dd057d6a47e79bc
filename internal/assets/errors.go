package assets

import "errors"

// Sentinel errors for asset operations.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidBasePath  = errors.New("invalid base path")
	ErrPathTraversal    = errors.New("path traversal detected")
	ErrAssetRead        = errors.New("failed to read asset")
)
