package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound 对象不在存储里（或笔记根本没挂文件）
var ErrObjectNotFound = errors.New("object not found in storage")

// Object 一次打开的对象读取流
type Object struct {
	io.ReadCloser
	Size        int64
	ContentType string
}

// BlobStore 文件存储抽象，生产用 MinIO，测试用内存实现
type BlobStore interface {
	// Put 存储文件并返回生成的对象 key（按日期分目录）
	Put(ctx context.Context, fileName string, size int64, reader io.Reader, contentType string) (string, error)
	// Open 打开对象读取流，对象不存在时返回 ErrObjectNotFound
	Open(ctx context.Context, key string) (*Object, error)
	// Remove 删除对象，对象本来就不在也算成功
	Remove(ctx context.Context, key string) error
	// URL 对象的外部访问地址
	URL(key string) string
}
