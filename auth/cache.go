package auth

import (
	"sync"
	"time"
)

// CachedProvider holds on to another provider's material for a bounded
// time, for clients doing enough requests that a filesystem read per
// call matters. Expiry keeps the "reflects current credentials"
// guarantee: rotated material is picked up within one TTL.
type CachedProvider struct {
	next Provider
	ttl  time.Duration
	now  func() time.Time

	mu      sync.Mutex
	current Material
	expires time.Time
}

func NewCached(next Provider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{next: next, ttl: ttl, now: time.Now}
}

func (p *CachedProvider) Resolve() (Material, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.now().Before(p.expires) {
		return p.current, nil
	}
	m, err := p.next.Resolve()
	if err != nil {
		return Material{}, err
	}
	p.current, p.expires = m, p.now().Add(p.ttl)
	return m, nil
}
