package locker

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	k := New()

	var (
		mu      sync.Mutex
		current int
		max     int
	)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock := k.Lock("car1")
			defer unlock()

			mu.Lock()
			current++
			if current > max {
				max = current
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			current--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, max)
}

func TestKeyedMutex_DifferentKeysIndependent(t *testing.T) {
	k := New()

	unlock1 := k.Lock("car1")
	defer unlock1()

	done := make(chan struct{})
	go func() {
		unlock2 := k.Lock("car2")
		unlock2()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestKeyedMutex_CleansUpEntries(t *testing.T) {
	k := New()

	unlock := k.Lock("car1")
	unlock()

	k.mu.Lock()
	defer k.mu.Unlock()
	assert.Empty(t, k.m)
}

func TestKeyedMutex_LockAll_NoDeadlockOnOppositeOrder(t *testing.T) {
	k := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := k.LockAll("car1", "car2")
			unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := k.LockAll("car2", "car1")
			unlock()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("deadlock in LockAll")
	}
}

func TestKeyedMutex_LockAll_DuplicateKeys(t *testing.T) {
	k := New()

	unlock := k.LockAll("car1", "car1")
	unlock()

	k.mu.Lock()
	defer k.mu.Unlock()
	assert.Empty(t, k.m)
}
