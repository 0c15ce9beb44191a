package token

import (
	"sync"
	"time"
)

// denylist tracks revoked token IDs until their natural expiry. Entries are
// pruned lazily whenever a new revocation is recorded, so the set never grows
// past the number of tokens revoked within one TTL window.
type denylist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func newDenylist() *denylist {
	return &denylist{revoked: make(map[string]time.Time)}
}

// add marks a token ID revoked until exp.
func (d *denylist) add(jti string, exp time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	for id, e := range d.revoked {
		if e.Before(now) {
			delete(d.revoked, id)
		}
	}

	d.revoked[jti] = exp
}

// contains reports whether the token ID is revoked and not yet expired.
func (d *denylist) contains(jti string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	exp, ok := d.revoked[jti]
	return ok && exp.After(time.Now())
}
