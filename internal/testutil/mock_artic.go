// Package testutil provides testing utilities for the artworks client and the
// table controller.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"
)

// MockArtwork is the JSON shape served for one record.
type MockArtwork struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	PlaceOfOrigin *string `json:"place_of_origin"`
	ArtistDisplay string  `json:"artist_display"`
	Inscription   *string `json:"inscription"`
	DateStart     int     `json:"date_start"`
	DateEnd       int     `json:"date_end"`
}

// MockPageResponse overrides the default response for a single page.
type MockPageResponse struct {
	StatusCode int
	Body       string
	Delay      time.Duration
}

// MockArtic is a configurable mock of the artworks endpoint. By default it
// serves Total synthetic records, Limit per page, ids starting at 1.
type MockArtic struct {
	server *httptest.Server

	mu        sync.RWMutex
	total     int
	limit     int
	delays    map[int]time.Duration
	overrides map[int]MockPageResponse

	// Tracking
	RequestCount int
	LastQuery    map[string]string
	LastHeader   http.Header
}

// NewMockArtic starts a mock server serving total records.
func NewMockArtic(total int) *MockArtic {
	m := &MockArtic{
		total:     total,
		limit:     10, //nolint:mnd // API page size.
		delays:    make(map[int]time.Duration),
		overrides: make(map[int]MockPageResponse),
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

// URL returns the base URL to configure the client with.
func (m *MockArtic) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockArtic) Close() {
	m.server.CloseClientConnections()
	m.server.Close()
}

// SetLimit changes the pagination limit reported in responses.
func (m *MockArtic) SetLimit(limit int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.limit = limit
}

// SetDelay delays responses for page.
func (m *MockArtic) SetDelay(page int, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delays[page] = d
}

// SetResponse replaces the response for page.
func (m *MockArtic) SetResponse(page int, resp MockPageResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[page] = resp
}

// Requests returns the number of requests served so far.
func (m *MockArtic) Requests() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// Record returns the synthetic record with the given id.
func Record(id int) MockArtwork {
	origin := "France"
	return MockArtwork{
		ID:            id,
		Title:         fmt.Sprintf("Artwork %d", id),
		PlaceOfOrigin: &origin,
		ArtistDisplay: fmt.Sprintf("Artist %d", id),
		Inscription:   nil,
		DateStart:     1800 + id, //nolint:mnd // Synthetic year.
		DateEnd:       1801 + id, //nolint:mnd // Synthetic year.
	}
}

func (m *MockArtic) handle(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	m.mu.Lock()
	m.RequestCount++
	m.LastHeader = r.Header.Clone()
	m.LastQuery = map[string]string{}
	for k := range r.URL.Query() {
		m.LastQuery[k] = r.URL.Query().Get(k)
	}
	delay := m.delays[page]
	override, hasOverride := m.overrides[page]
	total, limit := m.total, m.limit
	m.mu.Unlock()

	if hasOverride && override.Delay > 0 {
		delay = override.Delay
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	if hasOverride {
		status := override.StatusCode
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(override.Body))
		return
	}

	if r.URL.Path != "/artworks" {
		http.NotFound(w, r)
		return
	}

	data := []MockArtwork{}
	if page >= 1 && limit > 0 {
		for id := (page-1)*limit + 1; id <= page*limit && id <= total; id++ {
			data = append(data, Record(id))
		}
	}

	body := map[string]any{
		"data": data,
		"pagination": map[string]int{
			"total":        total,
			"limit":        limit,
			"current_page": page,
		},
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
