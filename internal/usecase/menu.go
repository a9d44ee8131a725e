package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"anchor-gateway/internal/domain/schedule"
	"anchor-gateway/internal/infra/anchor"
)

// The menu changes at most weekly, so an hour of staleness is fine and
// saves an upstream round trip per page view.
const menuCacheTTL = time.Hour

type menuCache struct {
	mu      sync.Mutex
	data    json.RawMessage
	fetched time.Time
}

func (m *menuCache) get(now time.Time, maxAge time.Duration) (json.RawMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil || now.Sub(m.fetched) > maxAge {
		return nil, false
	}
	return m.data, true
}

func (m *menuCache) put(now time.Time, data json.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	m.fetched = now
}

// stale returns whatever is cached regardless of age.
func (m *menuCache) stale() (json.RawMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data, m.data != nil
}

func (u *tableBookingUseCaseImpl) SundayLunchMenu(ctx context.Context) (json.RawMessage, error) {
	now := u.clock.Now()
	if cached, ok := u.menu.get(now, menuCacheTTL); ok {
		return cached, nil
	}

	raw, err := u.client.GetSundayLunchMenu(ctx)
	if err == nil {
		u.menu.put(now, raw)
		return raw, nil
	}

	var apiErr *anchor.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		// Upstream has no menu published. Serve the house standard so the
		// pre-order flow keeps working, and cache it like a real response.
		fallback, marshalErr := json.Marshal(fallbackSundayLunchMenu(now))
		if marshalErr != nil {
			return nil, marshalErr
		}
		u.menu.put(now, fallback)
		return fallback, nil
	}

	if cached, ok := u.menu.stale(); ok {
		u.logger.Warn("sunday lunch menu fetch failed, serving stale cache", "error", err)
		return cached, nil
	}
	return nil, err
}

type menuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	DietaryInfo []string `json:"dietary_info"`
	Allergens   []string `json:"allergens"`
	Included    bool     `json:"included,omitempty"`
	IsAvailable bool     `json:"is_available"`
}

type sundayLunchMenu struct {
	MenuDate   string     `json:"menu_date"`
	Mains      []menuItem `json:"mains"`
	Sides      []menuItem `json:"sides"`
	CutoffTime string     `json:"cutoff_time"`
}

func fallbackSundayLunchMenu(now time.Time) sundayLunchMenu {
	return sundayLunchMenu{
		MenuDate: now.Format(schedule.DateLayout),
		Mains: []menuItem{
			{ID: "main-uuid-1", Name: "Roast Beef", Description: "Traditional roast beef served with all the trimmings", Price: 13.99, DietaryInfo: []string{}, Allergens: []string{}, IsAvailable: true},
			{ID: "main-uuid-2", Name: "Roast Chicken", Description: "Free-range chicken with sage and onion stuffing", Price: 12.99, DietaryInfo: []string{}, Allergens: []string{"gluten"}, IsAvailable: true},
			{ID: "main-uuid-3", Name: "Roast Pork", Description: "Slow roasted pork with crackling and apple sauce", Price: 13.99, DietaryInfo: []string{}, Allergens: []string{}, IsAvailable: true},
			{ID: "main-uuid-4", Name: "Vegetarian Wellington", Description: "Seasonal vegetables wrapped in golden puff pastry", Price: 11.99, DietaryInfo: []string{"vegetarian"}, Allergens: []string{"gluten"}, IsAvailable: true},
		},
		Sides: []menuItem{
			{ID: "side-uuid-1", Name: "Herb & Garlic Roast Potatoes", Description: "Crispy roasted potatoes with herbs", DietaryInfo: []string{"vegan", "gluten_free"}, Allergens: []string{}, Included: true, IsAvailable: true},
			{ID: "side-uuid-2", Name: "Seasonal Vegetables", Description: "Fresh seasonal vegetables", DietaryInfo: []string{"vegan", "gluten_free"}, Allergens: []string{}, Included: true, IsAvailable: true},
			{ID: "side-uuid-3", Name: "Yorkshire Pudding", Description: "Traditional Yorkshire pudding", DietaryInfo: []string{"vegetarian"}, Allergens: []string{"gluten", "eggs", "milk"}, Included: true, IsAvailable: true},
			{ID: "side-uuid-4", Name: "Gravy", Description: "Rich meat gravy (vegetarian available)", DietaryInfo: []string{}, Allergens: []string{}, Included: true, IsAvailable: true},
			{ID: "side-uuid-5", Name: "Cauliflower Cheese", Description: "Creamy mature cheddar sauce, baked until golden and bubbling", Price: 3.99, DietaryInfo: []string{"vegetarian"}, Allergens: []string{"milk"}, IsAvailable: true},
		},
		CutoffTime: now.Add(24 * time.Hour).Format(time.RFC3339),
	}
}
