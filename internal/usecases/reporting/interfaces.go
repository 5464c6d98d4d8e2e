package reporting

import (
	"github.com/vfg2006/store-indicators-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// DatasetLoader define a interface para carregar a base de vendas já
// materializada em memória (a validação de formato acontece na ingestão)
type DatasetLoader interface {
	// LoadSales carrega todas as vendas do ciclo de relatório
	LoadSales() ([]domain.SaleRecord, error)
}

// RosterLoader define a interface para carregar o cadastro de lojas e
// destinatários
type RosterLoader interface {
	// LoadRoster carrega as lojas e a lista de contatos
	LoadRoster() (*domain.Roster, error)
}

// Renderer define a interface para transformar snapshots e rankings em markup
type Renderer interface {
	// RenderStoreReport gera o corpo HTML do relatório individual de uma loja
	RenderStoreReport(snapshot *domain.StoreSnapshot) (string, error)

	// RenderRankingReport gera o corpo HTML do relatório de rankings para a diretoria
	RenderRankingReport(tables []*domain.RankingTable, reference domain.ReportingPeriod) (string, error)
}

// Mailer define a interface para envio dos relatórios por e-mail
type Mailer interface {
	// Send envia um corpo HTML para os destinatários informados
	Send(to []string, subject string, htmlBody string) error
}

// BackupWriter define a interface para persistir uma cópia de cada relatório gerado
type BackupWriter interface {
	// WriteStoreReport grava o relatório renderizado da loja e retorna o caminho do arquivo
	WriteStoreReport(snapshot *domain.StoreSnapshot, htmlBody string) (string, error)
}
