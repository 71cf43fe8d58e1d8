// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired detail pages every 5 minutes
	detailCacheCleanup = 5 * time.Minute
)

// NewDetailCache creates a cache for rendered course detail pages.
func NewDetailCache(expiration time.Duration) *cache.Cache {
	return cache.New(expiration, detailCacheCleanup)
}

func CacheDetail(c *cache.Cache, id string, detail string) {
	c.Set(id, detail, cache.DefaultExpiration)
}

func GetDetail(c *cache.Cache, id string) string {
	val, ok := c.Get(id)
	if !ok {
		return ""
	}
	return val.(string)
}
