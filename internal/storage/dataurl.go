package storage

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrBadDataURI возвращается, когда inline-картинка не соответствует
// формату data:image/<ext>;base64,<payload> или base64 не декодируется.
var ErrBadDataURI = errors.New("недопустимый формат изображения")

// ImageData - декодированное содержимое картинки и её расширение.
type ImageData struct {
	Ext     string
	Content []byte
}

// ParseDataURI разбирает строку вида data:image/png;base64,iVBOR...
// Расширение берётся из mime-подтипа.
func ParseDataURI(value string) (*ImageData, error) {
	if !strings.HasPrefix(value, "data:image/") {
		return nil, ErrBadDataURI
	}

	rest := strings.TrimPrefix(value, "data:image/")

	ext, payload, found := strings.Cut(rest, ";base64,")
	if !found || ext == "" || payload == "" {
		return nil, ErrBadDataURI
	}

	content, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrBadDataURI
	}

	return &ImageData{Ext: ext, Content: content}, nil
}
