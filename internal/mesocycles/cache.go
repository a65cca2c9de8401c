package mesocycles

import (
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour            = 60 * 60
	detailsCacheExpire = oneHour * 6
	megabyte           = 1024 * 1024
)

// DetailsCache keeps nested mesocycle reads, keyed by user and mesocycle.
type DetailsCache struct {
	cache *freecache.Cache
}

func NewDetailsCache(sizeMB int) *DetailsCache {
	if sizeMB <= 0 {
		sizeMB = 16
	}
	return &DetailsCache{
		cache: freecache.NewCache(sizeMB * megabyte),
	}
}

func detailsCacheKey(userID, mesocycleID int) []byte {
	return []byte(fmt.Sprintf("mesocycle::%d::%d", userID, mesocycleID))
}

func (c *DetailsCache) Get(userID, mesocycleID int) (*MesocycleDetails, bool) {
	if c == nil {
		return nil, false
	}

	detailsBytes, err := c.cache.Get(detailsCacheKey(userID, mesocycleID))
	if err != nil {
		return nil, false
	}

	details := &MesocycleDetails{}
	if err := json.Unmarshal(detailsBytes, details); err != nil {
		log.Errorf("failed to unmarshal mesocycle %d from cache: %s", mesocycleID, err)
		return nil, false
	}

	return details, true
}

func (c *DetailsCache) Set(userID int, details *MesocycleDetails) {
	if c == nil || details == nil {
		return
	}

	detailsBytes, err := json.Marshal(details)
	if err != nil {
		log.Errorf("failed to marshal mesocycle %d for cache: %s", details.ID, err)
		return
	}

	if err := c.cache.Set(detailsCacheKey(userID, details.ID), detailsBytes, detailsCacheExpire); err != nil {
		log.Errorf("failed to write mesocycle cache for %d: %s", details.ID, err)
	}
}

func (c *DetailsCache) Invalidate(userID, mesocycleID int) {
	if c == nil {
		return
	}
	c.cache.Del(detailsCacheKey(userID, mesocycleID))
}

func (c *DetailsCache) EntryCount() int64 {
	if c == nil {
		return 0
	}
	return c.cache.EntryCount()
}

func (c *DetailsCache) HitRate() float64 {
	if c == nil {
		return 0
	}
	return c.cache.HitRate()
}
