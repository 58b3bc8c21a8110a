package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/huangsam/gazer/schema"
)

// fakeClient is a scripted SocialClient for pipeline tests.
type fakeClient struct {
	mu        sync.Mutex
	followers []string
	followees []string
	profiles  map[string]schema.ProfileRecord

	listCalls    int
	profileCalls map[string]int

	failFollowersAfter int // fail the Nth followers page when > 0
	failProfiles       map[string]bool
}

func newFakeClient(followers, followees []string) *fakeClient {
	return &fakeClient{
		followers:    followers,
		followees:    followees,
		profiles:     make(map[string]schema.ProfileRecord),
		profileCalls: make(map[string]int),
		failProfiles: make(map[string]bool),
	}
}

func (c *fakeClient) page(all []string, page, perPage int) []string {
	start := (page - 1) * perPage
	if start >= len(all) {
		return nil
	}
	end := start + perPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}

func (c *fakeClient) ListFollowersPage(_ context.Context, page, perPage int) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listCalls++
	if c.failFollowersAfter > 0 && page >= c.failFollowersAfter {
		return nil, errors.New("boom")
	}
	return c.page(c.followers, page, perPage), nil
}

func (c *fakeClient) ListFollowingPage(_ context.Context, page, perPage int) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listCalls++
	return c.page(c.followees, page, perPage), nil
}

func (c *fakeClient) GetProfile(_ context.Context, login string) (schema.ProfileRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profileCalls[login]++
	if c.failProfiles[login] {
		return schema.ProfileRecord{}, fmt.Errorf("profile fetch failed for %s", login)
	}
	if p, ok := c.profiles[login]; ok {
		return p, nil
	}
	return schema.ProfileRecord{Login: login}, nil
}

func (c *fakeClient) totalListCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listCalls
}

func (c *fakeClient) profileCallCount(login string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profileCalls[login]
}

// memEntry is one stored cache value.
type memEntry struct {
	value     []byte
	version   int
	timestamp int64
}

// memStore is an in-memory CacheStore for tests.
type memStore struct {
	mu      sync.Mutex
	data    map[string]memEntry
	failSet bool
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]memEntry)}
}

func (s *memStore) Get(key string) ([]byte, int, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.data[key]
	if !ok {
		return nil, 0, 0, errors.New("not found")
	}
	return entry.value, entry.version, entry.timestamp, nil
}

func (s *memStore) Set(key string, value []byte, version int, timestamp int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSet {
		return errors.New("store write failed")
	}
	s.data[key] = memEntry{value: value, version: version, timestamp: timestamp}
	return nil
}

func (s *memStore) GetStatus() (schema.CacheStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return schema.CacheStatus{Backend: "memory", Connected: true, TotalEntries: len(s.data)}, nil
}

func (s *memStore) Close() error { return nil }

func (s *memStore) entryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
