package server

import (
	"fmt"
	"net"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

// IPLimiter caps the number of concurrent sessions per remote address.
type IPLimiter struct {
	maxPerIP int

	mu        sync.Mutex
	ipCounter map[string]int
}

func NewIPLimiter(maxPerIP int) *IPLimiter {
	return &IPLimiter{
		maxPerIP:  maxPerIP,
		ipCounter: make(map[string]int),
	}
}

// Acquire reserves a slot for ip and reports whether one was free.
func (l *IPLimiter) Acquire(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ipCounter[ip] >= l.maxPerIP {
		return false
	}
	l.ipCounter[ip]++
	return true
}

func (l *IPLimiter) Release(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ipCounter[ip]--
	if l.ipCounter[ip] <= 0 {
		delete(l.ipCounter, ip)
	}
}

func (l *IPLimiter) Count(ip string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ipCounter[ip]
}

func (l *IPLimiter) Middleware(next ssh.Handler) ssh.Handler {
	return func(s ssh.Session) {
		ip := addrIP(s.RemoteAddr())

		if !l.Acquire(ip) {
			log.Warn("Connection denied: IP limit exceeded", "ip", ip, "limit", l.maxPerIP)
			errorMessage := fmt.Sprintf("Too many active connections from your IP (limit %d). Please try again later.\r\n", l.maxPerIP)
			s.Write([]byte(errorMessage))
			s.Close()
			return
		}
		defer func() {
			l.Release(ip)
			log.Info("Connection closed and counter decremented", "ip", ip, "count_after", l.Count(ip))
		}()

		log.Info("Connection accepted", "ip", ip, "current_count", l.Count(ip), "limit", l.maxPerIP)
		next(s)
	}
}

func addrIP(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return tcp.IP.String()
	}
	return addr.String()
}
