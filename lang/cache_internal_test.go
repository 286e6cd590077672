package lang

import (
	"errors"
	"sync"
	"testing"
)

func TestLazy_RetriesAfterFailure(t *testing.T) {
	var l lazy[int]
	calls := 0
	fail := errors.New("not yet")

	init := func() (*int, error) {
		calls++
		if calls == 1 {
			return nil, fail
		}
		v := calls * 10
		return &v, nil
	}

	if _, err := l.get(init); !errors.Is(err, fail) {
		t.Fatalf("first get: %v", err)
	}
	v, err := l.get(init)
	if err != nil || *v != 20 {
		t.Fatalf("second get = %v, %v", v, err)
	}
	v, err = l.get(init)
	if err != nil || *v != 20 || calls != 2 {
		t.Fatalf("third get = %v, %v, calls %d", v, err, calls)
	}

	if got := l.reset(); got == nil || *got != 20 {
		t.Errorf("reset returned %v", got)
	}
	if _, err := l.get(init); err != nil || calls != 3 {
		t.Errorf("get after reset: %v, calls %d", err, calls)
	}
}

func TestLazy_ConcurrentInitRunsOnce(t *testing.T) {
	var (
		l     lazy[string]
		mu    sync.Mutex
		calls int
		wg    sync.WaitGroup
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := l.get(func() (*string, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				s := "ready"
				return &s, nil
			})
			if err != nil || *v != "ready" {
				t.Errorf("get = %v, %v", v, err)
			}
		}()
	}
	wg.Wait()
	if calls != 1 {
		t.Errorf("init ran %d times", calls)
	}
}
