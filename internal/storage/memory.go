package storage

import (
	"fmt"
	"io"
	"sync"
)

// MemoryBlobStore 是 BlobStore 的内存实现，用于测试与本地开发。
// Err 非空时所有操作都返回该错误，用来模拟对象存储不可用。
type MemoryBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	counter int

	Err error
}

// NewMemoryBlobStore creates an empty in-memory store.
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{objects: make(map[string][]byte)}
}

func (m *MemoryBlobStore) Put(prefix string, upload Upload) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}

	data, err := io.ReadAll(upload.Reader)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	key := fmt.Sprintf("object-%d-%s", m.counter, upload.Filename)
	m.objects[prefix+key] = data
	return key, nil
}

func (m *MemoryBlobStore) SignedURL(prefix, key string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}

	// 与 S3 预签名一致：签名是本地计算，不检查对象是否存在
	return fmt.Sprintf("https://blob.test/%s%s?signed=1", prefix, key), nil
}

// Has reports whether an object exists under the given prefix and key.
func (m *MemoryBlobStore) Has(prefix, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[prefix+key]
	return ok
}
