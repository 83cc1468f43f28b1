package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var imageExtensionsByContentType = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
}

func DecodeBase64Image(encodedImage string) ([]byte, string, error) {
	parts := strings.SplitN(encodedImage, ",", 2)
	if len(parts) != 2 {
		return nil, "", errors.New("invalid base64 image")
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, "", err
	}

	semicolon := strings.Index(parts[0], ";")
	if !strings.HasPrefix(parts[0], "data:") || semicolon < 5 {
		return nil, "", errors.New("invalid base64 image header")
	}
	contentType := parts[0][5:semicolon]
	ext, ok := imageExtensionsByContentType[contentType]
	if !ok {
		return nil, "", errors.New("invalid image type")
	}

	return data, ext, nil
}

func ValidateImageFormat(ext string, allowedFormats string) error {
	formats := strings.Split(allowedFormats, ",")
	for _, format := range formats {
		if ext == format {
			return nil
		}
	}
	return fmt.Errorf("invalid image format. Allowed formats are: %s", strings.Join(formats, ", "))
}
