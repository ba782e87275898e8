package loader

import (
	"context"
)

// ModelFile represents one exchange file to be converted. It carries the
// file's location; the actual content is retrieved via the associated
// ModelFileLoader.
type ModelFile struct {
	ID       string
	FilePath string
	Loader   ModelFileLoader
}

// NewModelFileParams defines the input parameters for creating a ModelFile.
type NewModelFileParams struct {
	ID       string
	FilePath string
	Loader   ModelFileLoader
}

// NewModelFile creates a ModelFile from the given parameters.
func NewModelFile(params NewModelFileParams) ModelFile {
	return ModelFile{
		ID:       params.ID,
		FilePath: params.FilePath,
		Loader:   params.Loader,
	}
}

// GetText retrieves the raw content of the file using its Loader.
func (f *ModelFile) GetText(ctx context.Context) ([]byte, error) {
	return f.Loader.GetFileText(ctx, *f)
}

// ModelFileLoader defines the interface for loading the contents of a
// ModelFile. Implementations may load files from disk, cloud storage, or
// other sources.
type ModelFileLoader interface {
	GetFileText(ctx context.Context, file ModelFile) ([]byte, error)
}

// CacheKey returns the key under which loaders cache a file's content.
func CacheKey(file ModelFile) string {
	return file.ID + ":" + file.FilePath
}
