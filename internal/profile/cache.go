package profile

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const cacheTTLSeconds = 300

// Cache keeps recently read profiles in process memory, keyed by username.
// Every write of a username bumps its version, so a read that started before
// the write cannot put the older row back with SetIfUnchanged.
type Cache struct {
	fc *freecache.Cache

	mu       sync.Mutex
	versions map[string]uint64
}

func NewCache(sizeMB int) *Cache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &Cache{
		fc:       freecache.NewCache(sizeMB * 1024 * 1024),
		versions: make(map[string]uint64),
	}
}

func (c *Cache) Get(username string) (*Profile, bool) {
	raw, err := c.fc.Get([]byte(username))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Warnf("profile cache get [%s]: %s", username, err)
		}
		return nil, false
	}

	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		log.Warnf("profile cache decode [%s]: %s", username, err)
		c.fc.Del([]byte(username))
		return nil, false
	}
	return &p, true
}

// Version returns the current write version of the username.
func (c *Cache) Version(username string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.versions[username]
}

// Set stores p as the latest state of its username.
func (c *Cache) Set(p *Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[p.Username]++
	c.store(p)
}

// SetIfUnchanged stores p only when no write happened since version was taken.
func (c *Cache) SetIfUnchanged(p *Profile, version uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.versions[p.Username] != version {
		return false
	}
	c.store(p)
	return true
}

func (c *Cache) Invalidate(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[username]++
	c.fc.Del([]byte(username))
}

func (c *Cache) Len() int64 {
	return c.fc.EntryCount()
}

func (c *Cache) store(p *Profile) {
	raw, err := json.Marshal(p)
	if err != nil {
		log.Warnf("profile cache encode [%s]: %s", p.Username, err)
		return
	}
	if err := c.fc.Set([]byte(p.Username), raw, cacheTTLSeconds); err != nil {
		log.Warnf("profile cache set [%s]: %s", p.Username, err)
	}
}
