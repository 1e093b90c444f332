package server

import (
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPLimiter_AcquireRelease(t *testing.T) {
	limiter := NewIPLimiter(2)

	assert.True(t, limiter.Acquire("10.0.0.1"))
	assert.True(t, limiter.Acquire("10.0.0.1"))
	assert.False(t, limiter.Acquire("10.0.0.1"), "third session from the same address must be refused")
	assert.True(t, limiter.Acquire("10.0.0.2"), "other addresses are counted separately")
	assert.Equal(t, 2, limiter.Count("10.0.0.1"))

	limiter.Release("10.0.0.1")
	assert.Equal(t, 1, limiter.Count("10.0.0.1"))
	assert.True(t, limiter.Acquire("10.0.0.1"))

	limiter.Release("10.0.0.1")
	limiter.Release("10.0.0.1")
	assert.Equal(t, 0, limiter.Count("10.0.0.1"))
	_, tracked := limiter.ipCounter["10.0.0.1"]
	assert.False(t, tracked, "drained addresses are forgotten")
}

func TestIPLimiter_Concurrent(t *testing.T) {
	limiter := NewIPLimiter(5)

	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Acquire("192.168.1.1") {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, granted)
	assert.Equal(t, 5, limiter.Count("192.168.1.1"))
}

func TestAddrIP(t *testing.T) {
	assert.Equal(t, "127.0.0.1", addrIP(&net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 5555}))
	assert.Equal(t, "/tmp/sock", addrIP(&net.UnixAddr{Name: "/tmp/sock", Net: "unix"}))
}
