package resolving

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/store-indicators-api/internal/domain"
)

func sale(storeID int, date time.Time) domain.SaleRecord {
	return domain.SaleRecord{
		SaleCode:   "V001",
		StoreID:    storeID,
		Product:    "Produto",
		Quantity:   1,
		UnitValue:  10,
		FinalValue: 10,
		Date:       date,
	}
}

func TestResolve(t *testing.T) {
	day14 := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)
	day15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	day16 := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		records     []domain.SaleRecord
		expected    domain.ReportingPeriod
		expectedErr error
	}{
		{
			name: "Todas as lojas venderam no dia mais recente",
			records: []domain.SaleRecord{
				sale(1, day15),
				sale(2, day15),
				sale(1, day14),
				sale(2, day14),
			},
			expected: domain.ReportingPeriod{Day: day15, Year: 2024},
		},
		{
			name: "Loja sem lançamento no dia mais recente recua a data de referência",
			records: []domain.SaleRecord{
				sale(1, day16),
				sale(1, day15),
				sale(2, day15),
				sale(3, day15),
				sale(2, day14),
				sale(3, day14),
			},
			expected: domain.ReportingPeriod{Day: day15, Year: 2024},
		},
		{
			name: "Nenhuma data reúne todas as lojas",
			records: []domain.SaleRecord{
				sale(1, day15),
				sale(2, day14),
			},
			expectedErr: ErrNoConsistentReportingDate,
		},
		{
			name:        "Base vazia",
			records:     []domain.SaleRecord{},
			expectedErr: ErrEmptyDataset,
		},
		{
			name: "Loja única usa a data mais recente dela",
			records: []domain.SaleRecord{
				sale(7, day14),
				sale(7, day16),
			},
			expected: domain.ReportingPeriod{Day: day16, Year: 2024},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService()

			result, err := service.Resolve(tt.records)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResolveTruncatesTimestamps(t *testing.T) {
	service := NewService()

	// Vendas do mesmo dia em horários diferentes contam como a mesma data
	records := []domain.SaleRecord{
		sale(1, time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)),
		sale(2, time.Date(2024, 3, 10, 18, 45, 0, 0, time.UTC)),
	}

	result, err := service.Resolve(records)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), result.Day)
	assert.Equal(t, 2024, result.Year)
}
