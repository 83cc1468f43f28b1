package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64Image(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("image-bytes"))

	t.Run("valid png data uri decodes with its extension", func(t *testing.T) {
		data, ext, err := DecodeBase64Image("data:image/png;base64," + payload)
		require.NoError(t, err)
		assert.Equal(t, []byte("image-bytes"), data)
		assert.Equal(t, "png", ext)
	})

	t.Run("jpeg maps to the jpg extension", func(t *testing.T) {
		_, ext, err := DecodeBase64Image("data:image/jpeg;base64," + payload)
		require.NoError(t, err)
		assert.Equal(t, "jpg", ext)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		_, _, err := DecodeBase64Image(payload)
		assert.Error(t, err)
	})

	t.Run("unsupported content type is rejected", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:application/pdf;base64," + payload)
		assert.Error(t, err)
	})
}

func TestValidateImageFormat(t *testing.T) {
	t.Run("allowed format passes", func(t *testing.T) {
		assert.NoError(t, ValidateImageFormat("png", "png,jpg,jpeg"))
	})

	t.Run("disallowed format fails", func(t *testing.T) {
		assert.Error(t, ValidateImageFormat("webp", "png,jpg,jpeg"))
	})
}
