package assets

// Loader defines the contract for loading page templates.
// Implementations may load from embedded assets or the filesystem.
type Loader interface {
	// LoadTemplate loads an HTML template by name (without the .html
	// extension). Returns ErrTemplateNotFound if the template doesn't
	// exist and ErrInvalidAssetName if the name contains invalid
	// characters.
	LoadTemplate(name string) (string, error)
}

// Compile-time interface checks.
var (
	_ Loader = (*EmbeddedLoader)(nil)
	_ Loader = (*FilesystemLoader)(nil)
)
