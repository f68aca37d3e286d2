package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

type FileStorage struct {
	client    *minio.Client
	bucket    string
	endpoint  string
	publicURL string
}

var _ BlobStore = (*FileStorage)(nil)

// NewFileStorage 初始化 MinIO 连接
func NewFileStorage(endpoint, publicURL, accessKey, secretKey, bucketName string) (*FileStorage, error) {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false, // 本地开发通常用 HTTP (false), 生产环境用 HTTPS (true)
	})
	if err != nil {
		return nil, err
	}

	// 自动创建 Bucket (如果不存在)
	// 实际生产中建议手动创建，或者在这里加个 Check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, errBucket := minioClient.BucketExists(ctx, bucketName)
	if errBucket == nil && !exists {
		err := minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err == nil {
			// 只有创建成功才设置策略，预览页要直接引用文件 URL
			policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, bucketName)
			_ = minioClient.SetBucketPolicy(ctx, bucketName, policy)
			zap.L().Info("bucket created and policy set", zap.String("bucket", bucketName))
		} else {
			// 记录错误但不 Panic，可能只是权限不足，但 Bucket 已经存在
			zap.L().Warn("failed to create bucket", zap.Error(err))
		}
	}

	return &FileStorage{
		client:    minioClient,
		bucket:    bucketName,
		endpoint:  endpoint,
		publicURL: publicURL,
	}, nil
}

// Put 上传文件，key 按日期分目录：notes/2025/11/03/<uuid>.pdf
func (s *FileStorage) Put(ctx context.Context, fileName string, size int64, reader io.Reader, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	key := fmt.Sprintf("notes/%s/%s%s", time.Now().Format("2006/01/02"), uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *FileStorage) Open(ctx context.Context, key string) (*Object, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	// GetObject 是懒加载的，Stat 一下才知道对象在不在
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}

	return &Object{
		ReadCloser:  obj,
		Size:        info.Size,
		ContentType: info.ContentType,
	}, nil
}

func (s *FileStorage) Remove(ctx context.Context, key string) error {
	// S3 语义下删除不存在的对象本来就返回成功
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *FileStorage) URL(key string) string {
	// 拼接 URL 时的细节处理：
	// 如果 publicURL 是 "http://localhost:9000/"，最后会变成 "//bucket"
	// 所以要先 TrimRight
	baseURL := strings.TrimRight(s.publicURL, "/")
	// 注意：这里不用 path.Join，因为它会把 http:// 变成 http:/
	return fmt.Sprintf("%s/%s/%s", baseURL, s.bucket, key)
}
