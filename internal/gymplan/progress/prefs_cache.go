package progress

import (
	"encoding/json"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// PreferencesCache is an in-process read-through cache of user preferences.
type PreferencesCache struct {
	cache         *freecache.Cache
	expireSeconds int
}

func NewPreferencesCache(sizeMB, expireSeconds int) *PreferencesCache {
	return &PreferencesCache{
		cache:         freecache.NewCache(sizeMB * 1024 * 1024),
		expireSeconds: expireSeconds,
	}
}

func (c *PreferencesCache) Get(userID uuid.UUID) (*Preferences, bool) {
	raw, err := c.cache.Get(userID[:])
	if err != nil {
		return nil, false
	}
	prefs := &Preferences{}
	if err := json.Unmarshal(raw, prefs); err != nil {
		log.Errorf("preferences cache, unmarshal for %s: %s", userID, err)
		c.cache.Del(userID[:])
		return nil, false
	}
	return prefs, true
}

func (c *PreferencesCache) Set(userID uuid.UUID, prefs *Preferences) {
	raw, err := json.Marshal(prefs)
	if err != nil {
		log.Errorf("preferences cache, marshal for %s: %s", userID, err)
		return
	}
	if err := c.cache.Set(userID[:], raw, c.expireSeconds); err != nil {
		log.Warnf("preferences cache, set for %s: %s", userID, err)
	}
}

func (c *PreferencesCache) Invalidate(userID uuid.UUID) {
	c.cache.Del(userID[:])
}
