package mocks

import (
	"context"
	"tourbase/infras/lock"
)

type lockerImpl struct {
}

// AcquireUnit implements lock.Locker.
func (l *lockerImpl) AcquireUnit(_ context.Context, _ string) (lock.Lock, error) {
	return &lockImpl{}, nil
}

func NewLocker() lock.Locker {
	return &lockerImpl{}
}

type lockImpl struct {
}

// Release implements lock.Lock.
func (l *lockImpl) Release(_ context.Context) {

}
