package reporting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-indicators-api/internal/domain"
	"github.com/vfg2006/store-indicators-api/internal/usecases/evaluating"
)

// BuildSnapshots monta um snapshot por loja do cadastro. A iteração é guiada
// pelo cadastro, não pelos agregados: loja sem movimento no período também
// recebe snapshot, com valor zero e meta não atingida.
func BuildSnapshots(
	aggregated *domain.AggregatedIndicators,
	roster *domain.Roster,
	evaluator evaluating.GoalEvaluator,
) []*domain.StoreSnapshot {
	snapshots := make([]*domain.StoreSnapshot, 0, len(roster.Stores))

	for _, store := range roster.Stores {
		snapshot := &domain.StoreSnapshot{
			StoreID:       store.ID,
			StoreName:     store.Name,
			ReferenceDate: aggregated.Reference.Day,
			ReferenceYear: aggregated.Reference.Year,
			Daily:         buildEntries(aggregated.Daily, store.ID, domain.PeriodDay, evaluator),
			Yearly:        buildEntries(aggregated.Yearly, store.ID, domain.PeriodYear, evaluator),
		}

		if recipient := roster.RecipientForStore(store.ID); recipient != nil {
			snapshot.Manager = recipient.Name
			snapshot.Email = recipient.Email
		}

		snapshots = append(snapshots, snapshot)
	}

	logMissingRosterStores(aggregated, roster)

	return snapshots
}

// buildEntries monta as entradas de um período para uma loja. A decisão de
// exibir zero para lojas sem linha fica aqui, explícita: a ausência não passa
// pelo avaliador, é tratada diretamente como meta não atingida.
func buildEntries(
	indicators domain.IndicatorSet,
	storeID int,
	period domain.Period,
	evaluator evaluating.GoalEvaluator,
) map[domain.Metric]domain.SnapshotEntry {
	entries := make(map[domain.Metric]domain.SnapshotEntry, len(domain.Metrics))

	for _, metric := range domain.Metrics {
		value, exists := indicators.Lookup(metric, storeID)
		if !exists {
			entries[metric] = domain.SnapshotEntry{
				Metric:  metric,
				Value:   0,
				Defined: true,
				Goal:    evaluator.Threshold(metric, period),
				Met:     false,
			}
			continue
		}

		outcome := evaluator.Evaluate(metric, period, value)
		entries[metric] = domain.SnapshotEntry{
			Metric:  metric,
			Value:   value.Value,
			Defined: value.Defined,
			Goal:    outcome.Threshold,
			Met:     outcome.Met,
		}
	}

	return entries
}

// logMissingRosterStores registra lojas com vendas mas sem cadastro. As
// vendas delas seguem contando nos rankings; apenas o snapshot individual não
// é produzido, porque não existe destinatário.
func logMissingRosterStores(aggregated *domain.AggregatedIndicators, roster *domain.Roster) {
	for _, storeID := range aggregated.Yearly.StoreIDs() {
		if _, ok := roster.StoreName(storeID); !ok {
			logrus.WithFields(logrus.Fields{
				"store_id": storeID,
			}).Warn("Loja presente nas vendas mas ausente do cadastro, snapshot não será gerado")
		}
	}
}
