package render

import (
	"os"

	"flashd/internal/errors"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

// FileInfo describes an image file on disk
type FileInfo struct {
	MIME        string
	Size        string // human readable, e.g. "1.2 kB"
	Orientation int
}

// Inspect sniffs the content type and size of the file at path
func Inspect(path string) (FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, errors.NewImageError("cannot open image", path, errors.ImageOpenFailed, err)
	}
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return FileInfo{}, errors.NewImageError("cannot read image", path, errors.ImageOpenFailed, err)
	}
	return FileInfo{
		MIME:        mime.String(),
		Size:        humanize.Bytes(uint64(st.Size())),
		Orientation: Orientation(path),
	}, nil
}
