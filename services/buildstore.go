// ABOUTME: Build store for retrieving finished builds by id
// ABOUTME: Keeps builds in the TTL cache for the life of the process

package services

import (
	"errors"

	"github.com/markalston/pc-build-advisor/cache"
	"github.com/markalston/pc-build-advisor/models"
)

// ErrBuildNotFound means the build id is unknown or has expired
var ErrBuildNotFound = errors.New("build not found")

// BuildStore keeps finished builds so they can be fetched and exported later
type BuildStore struct {
	cache *cache.Cache[*models.FinishedBuild]
}

// NewBuildStore creates a store on top of c
func NewBuildStore(c *cache.Cache[*models.FinishedBuild]) *BuildStore {
	return &BuildStore{cache: c}
}

// Save stores fb under its id
func (s *BuildStore) Save(fb *models.FinishedBuild) {
	s.cache.Set(buildKey(fb.ID), fb)
}

// Get retrieves a build by id
func (s *BuildStore) Get(id string) (*models.FinishedBuild, error) {
	fb, ok := s.cache.Get(buildKey(id))
	if !ok {
		return nil, ErrBuildNotFound
	}
	return fb, nil
}

// Delete removes a build
func (s *BuildStore) Delete(id string) {
	s.cache.Clear(buildKey(id))
}

// Len is the number of cached builds
func (s *BuildStore) Len() int {
	return s.cache.Len()
}

func buildKey(id string) string {
	return "build:" + id
}
