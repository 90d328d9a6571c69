package spaces_test

import (
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/frahmantamala/facility-management/internal/spaces"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSpacesService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Spaces Service Suite")
}

// MockRepository implements spaces.RepositoryAPI for testing
type MockRepository struct {
	mu      sync.Mutex
	records map[spaces.Kind]map[int64]*spaces.Space
	nextID  int64
	failErr error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		records: map[spaces.Kind]map[int64]*spaces.Space{
			spaces.KindExhibition: {},
			spaces.KindParking:    {},
			spaces.KindRent:       {},
		},
		nextID: 1,
	}
}

func (m *MockRepository) GetAll(kind spaces.Kind) ([]*spaces.Space, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	out := make([]*spaces.Space, 0, len(m.records[kind]))
	for _, s := range m.records[kind] {
		out = append(out, s)
	}
	return out, nil
}

func (m *MockRepository) GetByID(kind spaces.Kind, id int64) (*spaces.Space, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	s, ok := m.records[kind][id]
	if !ok {
		return nil, spaces.ErrSpaceNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *MockRepository) Create(space *spaces.Space) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	space.ID = m.nextID
	m.nextID++
	space.CreatedAt = time.Now()
	space.UpdatedAt = space.CreatedAt
	copied := *space
	m.records[space.Kind][space.ID] = &copied
	return nil
}

func (m *MockRepository) Update(space *spaces.Space) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.records[space.Kind][space.ID]; !ok {
		return spaces.ErrSpaceNotFound
	}
	space.UpdatedAt = time.Now()
	copied := *space
	m.records[space.Kind][space.ID] = &copied
	return nil
}

func (m *MockRepository) Delete(kind spaces.Kind, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.records[kind][id]; !ok {
		return spaces.ErrSpaceNotFound
	}
	delete(m.records[kind], id)
	return nil
}

// MockStatsRepository implements spaces.StatsRepositoryAPI
type MockStatsRepository struct {
	counts  map[spaces.Kind]int64
	failErr error
}

func (m *MockStatsRepository) Count(kind spaces.Kind) (int64, error) {
	if m.failErr != nil {
		return 0, m.failErr
	}
	return m.counts[kind], nil
}

var _ = Describe("Spaces Service", func() {
	var (
		mockRepo  *MockRepository
		mockStats *MockStatsRepository
		service   *spaces.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		mockStats = &MockStatsRepository{counts: map[spaces.Kind]int64{}}
		testLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = spaces.NewService(mockRepo, mockStats, testLogger)
	})

	Describe("Create", func() {
		It("should reject a payload without building_name", func() {
			_, err := service.Create(spaces.KindParking, spaces.SpaceDTO{}, 1)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("building_name"))
		})

		It("should default omitted numeric fields to zero", func() {
			space, err := service.Create(spaces.KindParking, spaces.SpaceDTO{BuildingName: "Hall A"}, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(space.NumberOfSeats).NotTo(BeNil())
			Expect(*space.NumberOfSeats).To(BeZero())
		})

		It("should coerce non-numeric input to zero", func() {
			space, err := service.Create(spaces.KindExhibition, spaces.SpaceDTO{
				BuildingName: "Hall B",
				AreaSqm:      "not a number",
			}, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(*space.AreaSqm).To(BeZero())
		})

		It("should accept numeric strings", func() {
			space, err := service.Create(spaces.KindExhibition, spaces.SpaceDTO{
				BuildingName:  "Hall B",
				AreaSqm:       "1200.5",
				CeilingHeight: 8.5,
			}, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(*space.AreaSqm).To(Equal(1200.5))
			Expect(*space.CeilingHeight).To(Equal(8.5))
		})

		It("should leave spaces_name unset when the payload omits it", func() {
			space, err := service.Create(spaces.KindRent, spaces.SpaceDTO{BuildingName: "Tower 1"}, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(space.SpacesName).To(BeNil())
		})

		It("should carry spaces_name when the payload provides it", func() {
			space, err := service.Create(spaces.KindRent, spaces.SpaceDTO{
				BuildingName: "Tower 1",
				SpacesName:   "Unit 101",
			}, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(space.SpacesName).NotTo(BeNil())
			Expect(*space.SpacesName).To(Equal("Unit 101"))
		})

		It("should stamp the acting identity as creator and updater", func() {
			space, err := service.Create(spaces.KindRent, spaces.SpaceDTO{BuildingName: "Tower 1"}, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(*space.CreatedByUserID).To(Equal(int64(42)))
			Expect(*space.UpdatedByUserID).To(Equal(int64(42)))
		})
	})

	Describe("Update", func() {
		var created *spaces.Space

		BeforeEach(func() {
			var err error
			created, err = service.Create(spaces.KindParking, spaces.SpaceDTO{
				BuildingName:  "North Lot",
				NumberOfSeats: 250,
			}, 1)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should replace mutable fields and refresh the updater stamp", func() {
			updated, err := service.Update(spaces.KindParking, created.ID, spaces.SpaceDTO{
				BuildingName:  "North Lot Extended",
				NumberOfSeats: 300,
			}, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.BuildingName).To(Equal("North Lot Extended"))
			Expect(*updated.NumberOfSeats).To(Equal(300.0))
			Expect(*updated.UpdatedByUserID).To(Equal(int64(7)))
		})

		It("should never change the creator stamp or creation time", func() {
			updated, err := service.Update(spaces.KindParking, created.ID, spaces.SpaceDTO{
				BuildingName: "Renamed",
			}, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(*updated.CreatedByUserID).To(Equal(int64(1)))
			Expect(updated.CreatedAt).To(Equal(created.CreatedAt))
		})

		It("should fail for a missing record", func() {
			_, err := service.Update(spaces.KindParking, 999, spaces.SpaceDTO{BuildingName: "X"}, 7)
			Expect(err).To(MatchError(spaces.ErrSpaceNotFound))
		})
	})

	Describe("Delete", func() {
		It("should return the deleted record and make it unfindable", func() {
			created, err := service.Create(spaces.KindRent, spaces.SpaceDTO{BuildingName: "Tower 1"}, 1)
			Expect(err).NotTo(HaveOccurred())

			deleted, err := service.Delete(spaces.KindRent, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted.ID).To(Equal(created.ID))

			_, err = service.Get(spaces.KindRent, created.ID)
			Expect(err).To(MatchError(spaces.ErrSpaceNotFound))
		})

		It("should fail for a missing record", func() {
			_, err := service.Delete(spaces.KindExhibition, 999)
			Expect(err).To(MatchError(spaces.ErrSpaceNotFound))
		})
	})

	Describe("Summarize", func() {
		It("should report per-kind counts and their sum", func() {
			mockStats.counts = map[spaces.Kind]int64{
				spaces.KindExhibition: 3,
				spaces.KindParking:    5,
				spaces.KindRent:       2,
			}

			summary, err := service.Summarize()
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Exhibition).To(Equal(int64(3)))
			Expect(summary.Parking).To(Equal(int64(5)))
			Expect(summary.Rent).To(Equal(int64(2)))
			Expect(summary.Total).To(Equal(int64(10)))
		})

		It("should surface a counting failure", func() {
			mockStats.failErr = errors.New("database error")
			_, err := service.Summarize()
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ParseKind", func() {
		It("should accept the three known kinds", func() {
			for _, s := range []string{"exhibition", "parking", "rent"} {
				kind, err := spaces.ParseKind(s)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(kind)).To(Equal(s))
			}
		})

		It("should reject anything else", func() {
			_, err := spaces.ParseKind("warehouse")
			Expect(err).To(MatchError(spaces.ErrUnknownKind))
		})
	})
})
