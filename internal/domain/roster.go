package domain

import "fmt"

// Store é uma loja cadastrada no arquivo de lojas
type Store struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Recipient é um destinatário da lista de contatos. StoreID nulo indica um
// destinatário corporativo (diretoria), que recebe o ranking em vez do
// relatório individual de loja.
type Recipient struct {
	StoreID *int   `json:"store_id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// Roster é o cadastro de lojas e destinatários carregado pela ingestão.
// Somente leitura para o motor de indicadores.
type Roster struct {
	Stores     []Store     `json:"stores"`
	Recipients []Recipient `json:"recipients"`
}

// StoreName retorna o nome cadastrado da loja. O segundo retorno indica se a
// loja existe no cadastro.
func (r *Roster) StoreName(storeID int) (string, bool) {
	for _, store := range r.Stores {
		if store.ID == storeID {
			return store.Name, true
		}
	}
	return "", false
}

// DisplayName retorna o nome da loja ou um identificador derivado do ID para
// lojas presentes nas vendas mas ausentes do cadastro
func (r *Roster) DisplayName(storeID int) string {
	if name, ok := r.StoreName(storeID); ok {
		return name
	}
	return fmt.Sprintf("Loja %d", storeID)
}

// RecipientForStore retorna o destinatário do relatório individual da loja,
// ou nil quando a loja não possui contato cadastrado
func (r *Roster) RecipientForStore(storeID int) *Recipient {
	for i := range r.Recipients {
		recipient := &r.Recipients[i]
		if recipient.StoreID != nil && *recipient.StoreID == storeID {
			return recipient
		}
	}
	return nil
}

// BoardRecipients retorna os destinatários corporativos (sem loja associada)
func (r *Roster) BoardRecipients() []Recipient {
	board := make([]Recipient, 0)
	for _, recipient := range r.Recipients {
		if recipient.StoreID == nil {
			board = append(board, recipient)
		}
	}
	return board
}
