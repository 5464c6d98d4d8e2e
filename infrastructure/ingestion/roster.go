package ingestion

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-indicators-api/internal/config"
	"github.com/vfg2006/store-indicators-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// BoardContactName identifica, na lista de contatos, o destinatário
// corporativo que recebe o ranking em vez do relatório individual
const BoardContactName = "Diretoria"

// RosterFileLoader carrega o cadastro de lojas (CSV) e a lista de contatos
// (planilha Excel)
type RosterFileLoader struct {
	cfg config.Ingestion
}

func NewRosterFileLoader(cfg config.Ingestion) *RosterFileLoader {
	return &RosterFileLoader{cfg: cfg}
}

// LoadRoster monta o cadastro completo: lojas do CSV e destinatários da
// planilha de contatos, com os contatos associados às lojas pelo nome
func (l *RosterFileLoader) LoadRoster() (*domain.Roster, error) {
	stores, err := l.loadStores()
	if err != nil {
		return nil, err
	}

	recipients, err := l.loadRecipients(stores)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"stores":     len(stores),
		"recipients": len(recipients),
	}).Info("Cadastro de lojas e destinatários carregado")

	return &domain.Roster{
		Stores:     stores,
		Recipients: recipients,
	}, nil
}

// loadStores lê o CSV de lojas no formato "ID Loja;Loja"
func (l *RosterFileLoader) loadStores() ([]domain.Store, error) {
	file, err := os.Open(l.cfg.StoresFile)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir cadastro de lojas %s", l.cfg.StoresFile)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cadastro de lojas")
	}

	if len(rows) < 2 {
		return nil, errors.Errorf("cadastro de lojas %s vazio", l.cfg.StoresFile)
	}

	stores := make([]domain.Store, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 2 {
			return nil, errors.Errorf("linha %d do cadastro de lojas malformada", i+2)
		}

		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d do cadastro de lojas: ID Loja inválido %q", i+2, row[0])
		}

		name := strings.TrimSpace(row[1])
		if name == "" {
			return nil, errors.Errorf("linha %d do cadastro de lojas: nome vazio", i+2)
		}

		stores = append(stores, domain.Store{ID: id, Name: name})
	}

	return stores, nil
}

// loadRecipients lê a planilha de contatos no formato "Loja, Gerente, E-mail".
// A linha cuja loja é a diretoria vira destinatário corporativo (sem loja).
func (l *RosterFileLoader) loadRecipients(stores []domain.Store) ([]domain.Recipient, error) {
	file, err := excelize.OpenFile(l.cfg.ContactsFile)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir lista de contatos %s", l.cfg.ContactsFile)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Errorf("lista de contatos %s não possui abas", l.cfg.ContactsFile)
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler linhas da lista de contatos")
	}

	if len(rows) < 2 {
		return nil, errors.Errorf("lista de contatos %s vazia", l.cfg.ContactsFile)
	}

	storeIDByName := make(map[string]int, len(stores))
	for _, store := range stores {
		storeIDByName[store.Name] = store.ID
	}

	recipients := make([]domain.Recipient, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		if len(row) < 3 {
			return nil, errors.Errorf("linha %d da lista de contatos malformada", i+2)
		}

		storeName := strings.TrimSpace(row[0])
		manager := strings.TrimSpace(row[1])
		email := strings.TrimSpace(row[2])

		if email == "" {
			return nil, errors.Errorf("linha %d da lista de contatos: e-mail vazio", i+2)
		}

		recipient := domain.Recipient{Name: manager, Email: email}

		if !strings.EqualFold(storeName, BoardContactName) {
			storeID, ok := storeIDByName[storeName]
			if !ok {
				return nil, errors.Errorf("linha %d da lista de contatos: loja %q não existe no cadastro", i+2, storeName)
			}
			recipient.StoreID = &storeID
		}

		recipients = append(recipients, recipient)
	}

	return recipients, nil
}
