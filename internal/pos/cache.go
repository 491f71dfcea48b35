package pos

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

// Cache de respostas escopado à instância do cliente (nunca global).
// Aplicado só a leituras idempotentes; invalidado em escritas no mesmo
// recurso lógico.

const DefaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	data     []byte
	storedAt time.Time
}

type responseCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newResponseCache(ttl time.Duration) *responseCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &responseCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// cacheKey: método + endpoint + hash do corpo
func cacheKey(method, path string, body []byte) string {
	sum := sha256.Sum256(body)
	return method + " " + path + " " + hex.EncodeToString(sum[:8])
}

func (c *responseCache) get(key string, now time.Time) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if now.Sub(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.data, true
}

func (c *responseCache) set(key string, data []byte, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{data: data, storedAt: now}
}

// invalidate remove entradas cujo endpoint começa pelo prefixo dado.
func (c *responseCache) invalidate(pathPrefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		// key = "METHOD path hash"
		parts := strings.SplitN(key, " ", 3)
		if len(parts) >= 2 && strings.HasPrefix(parts[1], pathPrefix) {
			delete(c.entries, key)
		}
	}
}
