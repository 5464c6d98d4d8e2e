package ranking

import (
	"github.com/vfg2006/store-indicators-api/infrastructure/repository"
	"github.com/vfg2006/store-indicators-api/internal/domain"
)

type RankingService interface {
	GetLatestRankings() (*domain.RankingTablesResponse, error)
}

type StoreRankingService struct {
	RankingHistoryRepository repository.RankingHistoryRepository
}

func NewStoreRankingService(rankingHistoryRepository repository.RankingHistoryRepository) RankingService {
	return &StoreRankingService{
		RankingHistoryRepository: rankingHistoryRepository,
	}
}

func (s *StoreRankingService) GetLatestRankings() (*domain.RankingTablesResponse, error) {
	rankings, err := s.RankingHistoryRepository.GetLatestRankings()
	if err != nil {
		return nil, err
	}
	return rankings, nil
}
