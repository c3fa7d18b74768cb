package repository

import (
	"context"
	"sync"
)

// DocumentLocalStorage keeps the document in process memory.
type DocumentLocalStorage struct {
	mu   sync.RWMutex
	data []byte
}

func NewDocumentLocalStorage() *DocumentLocalStorage {
	return &DocumentLocalStorage{}
}

func (l *DocumentLocalStorage) Read(_ context.Context) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.data == nil {
		return nil, NotFoundErr
	}
	data := make([]byte, len(l.data))
	copy(data, l.data)
	return data, nil
}

func (l *DocumentLocalStorage) Write(_ context.Context, data []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.data = make([]byte, len(data))
	copy(l.data, data)
	return nil
}

var _ Document = (*DocumentLocalStorage)(nil)
