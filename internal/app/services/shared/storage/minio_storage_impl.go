package storage

import (
	"bytes"
	"context"
	"fmt"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	Client     *minio.Client
	BucketName string
	BaseUrl    string
}

func NewMinioStorage(client *minio.Client, driverConfig *config.DriverConfig) contracts.ObjectStorage {
	scheme := "http"
	if driverConfig.Minio.UseSSL {
		scheme = "https"
	}
	return &minioStorage{
		Client:     client,
		BucketName: driverConfig.Minio.BucketName,
		BaseUrl:    fmt.Sprintf("%s://%s:%s", scheme, driverConfig.Minio.Host, driverConfig.Minio.Port),
	}
}

func (s *minioStorage) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	_, err := s.Client.PutObject(
		ctx,
		s.BucketName,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", exceptions.ErrStorageUpload(err)
	}
	return fmt.Sprintf("%s/%s/%s", s.BaseUrl, s.BucketName, objectName), nil
}
