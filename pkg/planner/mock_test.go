package planner

import (
	"context"
	"fmt"

	"github.com/bunnysync/bunnysync/pkg/storage"
)

// mockStorageClient is a hand-rolled storage.Client for tests.
type mockStorageClient struct {
	listObjectsFunc  func(ctx context.Context, path string) ([]storage.Object, error)
	getObjectFunc    func(ctx context.Context, path string) ([]byte, error)
	putObjectFunc    func(ctx context.Context, path string, data []byte) error
	deleteObjectFunc func(ctx context.Context, path string) error

	listCalls []string
}

func (m *mockStorageClient) ListObjects(ctx context.Context, path string) ([]storage.Object, error) {
	m.listCalls = append(m.listCalls, path)
	if m.listObjectsFunc != nil {
		return m.listObjectsFunc(ctx, path)
	}
	return nil, fmt.Errorf("ListObjects not implemented")
}

func (m *mockStorageClient) GetObject(ctx context.Context, path string) ([]byte, error) {
	if m.getObjectFunc != nil {
		return m.getObjectFunc(ctx, path)
	}
	return nil, fmt.Errorf("GetObject not implemented")
}

func (m *mockStorageClient) PutObject(ctx context.Context, path string, data []byte) error {
	if m.putObjectFunc != nil {
		return m.putObjectFunc(ctx, path, data)
	}
	return fmt.Errorf("PutObject not implemented")
}

func (m *mockStorageClient) DeleteObject(ctx context.Context, path string) error {
	if m.deleteObjectFunc != nil {
		return m.deleteObjectFunc(ctx, path)
	}
	return fmt.Errorf("DeleteObject not implemented")
}
