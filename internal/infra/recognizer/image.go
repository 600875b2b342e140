package recognizer

import (
	"encoding/base64"
	"net/http"
	"strings"

	"meter-reading-api/internal/pkg/errs"
)

// decodeImage returns the raw bytes and MIME type of a base64 payload.
// A data URL prefix ("data:image/png;base64,") is tolerated and its MIME type wins.
func decodeImage(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	var hintMIME string
	if strings.HasPrefix(s, "data:") {
		if idx := strings.IndexByte(s, ','); idx > 0 {
			meta := s[len("data:"):idx]
			if semi := strings.IndexByte(meta, ';'); semi >= 0 {
				hintMIME = meta[:semi]
			} else {
				hintMIME = meta
			}
			s = s[idx+1:]
		}
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		data, err = base64.URLEncoding.DecodeString(s)
		if err != nil {
			return nil, "", errs.Mark(errs.Wrap(err, "decode base64 image"), ErrInvalidImage)
		}
	}
	if len(data) == 0 {
		return nil, "", ErrInvalidImage
	}

	if hintMIME != "" {
		return data, hintMIME, nil
	}
	return data, http.DetectContentType(data), nil
}
