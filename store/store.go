package store

import (
	"sync"

	"turipass.io/terminal/models"
)

// State is the client-visible snapshot of everything fetched from the
// backend. Derived views (eligibility, active history) are pure
// functions over a snapshot, never cached here.
type State struct {
	Partner       *models.Partner
	Promotions    []models.Promotion
	Consumptions  []models.ConsumptionRecord
	Branches      []models.Branch
	Categories    []models.Category
	TouristPoints []models.TouristPoint
}

// Store is the single shared state container. Mutation is either
// whole-collection replacement after a fetch or single-item
// replace/append after a point mutation; there is no field-level merge.
type Store struct {
	mu    sync.RWMutex
	state State
}

func New() *Store {
	return &Store{}
}

// Snapshot returns a value copy of the current state. Callers may read
// it freely without holding any lock.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := State{
		Promotions:    append([]models.Promotion(nil), s.state.Promotions...),
		Consumptions:  append([]models.ConsumptionRecord(nil), s.state.Consumptions...),
		Branches:      append([]models.Branch(nil), s.state.Branches...),
		Categories:    append([]models.Category(nil), s.state.Categories...),
		TouristPoints: append([]models.TouristPoint(nil), s.state.TouristPoints...),
	}
	if s.state.Partner != nil {
		partner := *s.state.Partner
		snapshot.Partner = &partner
	}
	return snapshot
}

func (s *Store) SetPartner(partner *models.Partner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Partner = partner
}

func (s *Store) ReplacePromotions(promotions []models.Promotion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Promotions = promotions
}

func (s *Store) UpsertPromotion(promotion models.Promotion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Promotions {
		if s.state.Promotions[i].ID == promotion.ID {
			s.state.Promotions[i] = promotion
			return
		}
	}
	s.state.Promotions = append(s.state.Promotions, promotion)
}

func (s *Store) ReplaceConsumptions(records []models.ConsumptionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Consumptions = records
}

func (s *Store) UpsertConsumption(record models.ConsumptionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Consumptions {
		if s.state.Consumptions[i].ID == record.ID {
			s.state.Consumptions[i] = record
			return
		}
	}
	s.state.Consumptions = append(s.state.Consumptions, record)
}

func (s *Store) ReplaceBranches(branches []models.Branch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Branches = branches
}

func (s *Store) UpsertBranch(branch models.Branch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Branches {
		if s.state.Branches[i].ID == branch.ID {
			s.state.Branches[i] = branch
			return
		}
	}
	s.state.Branches = append(s.state.Branches, branch)
}

func (s *Store) ReplaceCategories(categories []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Categories = categories
}

func (s *Store) ReplaceTouristPoints(points []models.TouristPoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.TouristPoints = points
}

// Clear drops all state, used when the operator logs out of the
// terminal.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
}
