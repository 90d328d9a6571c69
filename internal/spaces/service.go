package spaces

import (
	"log/slog"
)

type Service struct {
	repo   RepositoryAPI
	stats  StatsRepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, stats StatsRepositoryAPI, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, stats: stats, logger: logger}
}

func (s *Service) List(kind Kind) ([]*Space, error) {
	return s.repo.GetAll(kind)
}

func (s *Service) Get(kind Kind, id int64) (*Space, error) {
	return s.repo.GetByID(kind, id)
}

// Create validates the payload, coerces numeric fields and stamps the acting
// identity as both creator and updater.
func (s *Service) Create(kind Kind, dto SpaceDTO, actorID int64) (*Space, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	space := dto.toSpace(kind)
	space.CreatedByUserID = &actorID
	space.UpdatedByUserID = &actorID

	if err := s.repo.Create(space); err != nil {
		return nil, err
	}

	s.logger.Info("space created", "kind", kind, "space_id", space.ID, "created_by", actorID)
	return space, nil
}

// Update replaces all mutable attributes and refreshes the updater stamp.
// The creator stamp and created_at are never touched.
func (s *Service) Update(kind Kind, id int64, dto SpaceDTO, actorID int64) (*Space, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(kind, id)
	if err != nil {
		return nil, err
	}

	space := dto.toSpace(kind)
	space.ID = existing.ID
	space.CreatedByUserID = existing.CreatedByUserID
	space.CreatedAt = existing.CreatedAt
	space.UpdatedByUserID = &actorID

	if err := s.repo.Update(space); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(kind, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("space updated", "kind", kind, "space_id", id, "updated_by", actorID)
	return updated, nil
}

// Delete hard-deletes a record and returns it for confirmation.
func (s *Service) Delete(kind Kind, id int64) (*Space, error) {
	existing, err := s.repo.GetByID(kind, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(kind, id); err != nil {
		return nil, err
	}

	s.logger.Info("space deleted", "kind", kind, "space_id", id)
	return existing, nil
}

// Summarize counts the three tables concurrently and joins the results.
func (s *Service) Summarize() (*Summary, error) {
	type result struct {
		kind  Kind
		count int64
		err   error
	}

	kinds := []Kind{KindExhibition, KindParking, KindRent}
	results := make(chan result, len(kinds))

	for _, k := range kinds {
		go func(k Kind) {
			count, err := s.stats.Count(k)
			results <- result{kind: k, count: count, err: err}
		}(k)
	}

	summary := &Summary{}
	for range kinds {
		r := <-results
		if r.err != nil {
			return nil, r.err
		}
		switch r.kind {
		case KindExhibition:
			summary.Exhibition = r.count
		case KindParking:
			summary.Parking = r.count
		case KindRent:
			summary.Rent = r.count
		}
	}

	summary.Total = summary.Exhibition + summary.Parking + summary.Rent
	return summary, nil
}
