package cli

import (
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"

	"github.com/wetrippo/wishlist/internal/netx"
)

// uploadToStorage is a test seam for the presigned PUT.
var uploadToStorage = netx.UploadToPresignedURL

// Upload sends a local image file to object storage via a presigned URL and
// prints the storage key. The key can then be referenced as an item's
// image URL.
func (a *App) Upload(ctx context.Context) {

	path, err := GetSimpleText(a.reader, "Enter image file path", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("error reading file: %v", err)
		return
	}

	key, url, err := a.client.ImageUpload(ctx)
	if err != nil {
		log.Printf("error requesting upload slot: %v", err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if err := uploadToStorage(url, data, contentType); err != nil {
		log.Printf("upload error: %v", err)
		return
	}

	fmt.Fprintf(a.out, "Uploaded as %s\n", key)
}
