package contracts

import "context"

type ObjectStorage interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) (url string, err error)
}
