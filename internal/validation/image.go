package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxImageSize caps featured-image uploads at 5MB.
const MaxImageSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ValidateImage checks a featured-image upload: size limit, extension, and
// the sniffed content type of the first bytes (the declared MIME type is
// not trusted).
func ValidateImage(header *multipart.FileHeader) error {
	if header.Size > MaxImageSize {
		return fmt.Errorf("image exceeds %dMB limit", MaxImageSize>>20)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		return fmt.Errorf("unsupported image extension %q", ext)
	}

	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return fmt.Errorf("read upload: %w", err)
	}

	contentType := http.DetectContentType(head[:n])
	if !allowedImageTypes[contentType] {
		return fmt.Errorf("unsupported image type %q", contentType)
	}
	return nil
}
