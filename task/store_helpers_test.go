package task

import (
	"errors"
	"testing"
	"time"
)

// memBlobstore implements Blobstore in memory for tests.
type memBlobstore struct {
	data    []byte
	saves   int
	loadErr error
	saveErr error
}

func (m *memBlobstore) Load() ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data, nil
}

func (m *memBlobstore) Save(data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.data = append([]byte(nil), data...)
	return nil
}

func newTestStore(t *testing.T) (*Store, *memBlobstore) {
	t.Helper()

	blobs := &memBlobstore{}
	store, err := Open(blobs, testNow())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store, blobs
}

func testNow() time.Time {
	return time.Date(2024, 6, 5, 12, 0, 0, 0, time.Local)
}

var errBlobstore = errors.New("blobstore unavailable")
