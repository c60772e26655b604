package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = ".tubescribe.lock"

// InstanceLock guards an archive root against concurrent sessions.
type InstanceLock struct {
	lock *flock.Flock
}

// AcquireInstanceLock takes an advisory lock under the archive root. It
// fails immediately when another process already holds it.
func AcquireInstanceLock(root string) (*InstanceLock, error) {
	lock := flock.New(filepath.Join(root, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire instance lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another tubescribe session is already using this archive")
	}
	return &InstanceLock{lock: lock}, nil
}

// Release gives the lock back. Safe to call on a nil receiver.
func (l *InstanceLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
