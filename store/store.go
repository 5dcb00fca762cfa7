package store

import (
	"encoding/json"
	"log"

	"github.com/RekhaKadam/sonna-s-cafe/models"
)

// Well-known record keys, carried over from the storefront's storage layout.
const (
	KeyOrders             = "orders"
	KeyProfile            = "userProfile"
	KeyRememberedCustomer = "rememberedCustomer"
)

// Store is the session and order store: an append-only order history,
// a single mutable profile, and the remembered-customer cache. Storage
// failures are soft — reads degrade to "no data", writes log and
// continue, and the in-memory flow is never interrupted.
type Store struct {
	kv KV
}

// New wraps a KV port.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Orders returns the order history, newest first. An absent or malformed
// record reads as an empty list.
func (s *Store) Orders() []models.Order {
	raw, ok, err := s.kv.Get(KeyOrders)
	if err != nil {
		log.Printf("store: reading orders: %v", err)
		return nil
	}
	if !ok {
		return nil
	}
	var orders []models.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		log.Printf("store: malformed orders record: %v", err)
		return nil
	}
	return orders
}

// AppendOrder prepends the order to the history.
func (s *Store) AppendOrder(order models.Order) {
	orders := append([]models.Order{order}, s.Orders()...)
	raw, err := json.Marshal(orders)
	if err != nil {
		log.Printf("store: encoding orders: %v", err)
		return
	}
	if err := s.kv.Set(KeyOrders, raw); err != nil {
		log.Printf("store: writing orders: %v", err)
	}
}

// Profile returns the user profile. The second result is false when no
// profile has been recorded yet.
func (s *Store) Profile() (models.UserProfile, bool) {
	raw, ok, err := s.kv.Get(KeyProfile)
	if err != nil {
		log.Printf("store: reading profile: %v", err)
		return models.UserProfile{}, false
	}
	if !ok {
		return models.UserProfile{}, false
	}
	var profile models.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		log.Printf("store: malformed profile record: %v", err)
		return models.UserProfile{}, false
	}
	return profile, true
}

// RecordOrderForProfile accumulates a completed order into the profile:
// first order creates it, later orders add points and bump the count.
// Name and phone always take the current checkout's values.
func (s *Store) RecordOrderForProfile(name, phone string, loyaltyPoints int) {
	profile, ok := s.Profile()
	if !ok {
		profile = models.UserProfile{}
	}
	profile.Name = name
	profile.Phone = phone
	profile.LoyaltyPoints += loyaltyPoints
	profile.Orders++
	s.writeProfile(profile)
}

// EnsureProfile creates an empty-history profile on first OTP login.
// An existing profile is left untouched.
func (s *Store) EnsureProfile(name, phone string) {
	if _, ok := s.Profile(); ok {
		return
	}
	s.writeProfile(models.UserProfile{Name: name, Phone: phone})
}

func (s *Store) writeProfile(profile models.UserProfile) {
	raw, err := json.Marshal(profile)
	if err != nil {
		log.Printf("store: encoding profile: %v", err)
		return
	}
	if err := s.kv.Set(KeyProfile, raw); err != nil {
		log.Printf("store: writing profile: %v", err)
	}
}

// RememberedCustomer returns the checkout pre-fill cache.
func (s *Store) RememberedCustomer() (models.RememberedCustomer, bool) {
	raw, ok, err := s.kv.Get(KeyRememberedCustomer)
	if err != nil {
		log.Printf("store: reading remembered customer: %v", err)
		return models.RememberedCustomer{}, false
	}
	if !ok {
		return models.RememberedCustomer{}, false
	}
	var cust models.RememberedCustomer
	if err := json.Unmarshal(raw, &cust); err != nil {
		log.Printf("store: malformed remembered customer record: %v", err)
		return models.RememberedCustomer{}, false
	}
	return cust, true
}

// RememberCustomer caches name and phone after checkout details validate.
func (s *Store) RememberCustomer(name, phone string) {
	raw, err := json.Marshal(models.RememberedCustomer{Name: name, Phone: phone})
	if err != nil {
		log.Printf("store: encoding remembered customer: %v", err)
		return
	}
	if err := s.kv.Set(KeyRememberedCustomer, raw); err != nil {
		log.Printf("store: writing remembered customer: %v", err)
	}
}
