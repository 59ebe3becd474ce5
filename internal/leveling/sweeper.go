package leveling

import (
	"fmt"

	"github.com/ignislabs/ignis-go/pkg/logger"
)

// MemberLister enumera os membros atuais do servidor acompanhado
type MemberLister interface {
	ListMemberIDs(guildID string) (map[string]struct{}, error)
}

// Sweeper remove registros de progresso de usuários que saíram do
// servidor principal. Roda na inicialização e uma vez por dia.
//
// Falha na listagem de membros aborta a varredura inteira: na dúvida,
// nenhum progresso é apagado.
type Sweeper struct {
	ledger  *Ledger
	members MemberLister
	guildID string
}

// NewSweeper creates the inactivity sweeper
func NewSweeper(ledger *Ledger, members MemberLister, guildID string) *Sweeper {
	return &Sweeper{
		ledger:  ledger,
		members: members,
		guildID: guildID,
	}
}

// Sweep executa uma passada de limpeza
func (sw *Sweeper) Sweep() {
	if sw.guildID == "" {
		return
	}

	ids, err := sw.members.ListMemberIDs(sw.guildID)
	if err != nil {
		logger.Warn(fmt.Sprintf("Varredura de inativos abortada, falha ao listar membros: %v", err), "Niveis")
		return
	}

	records, err := sw.ledger.All()
	if err != nil {
		logger.Error(fmt.Sprintf("Varredura de inativos abortada, falha ao ler o ledger: %v", err), "Niveis")
		return
	}

	removed := 0
	for _, record := range records {
		if _, present := ids[record.UserID]; present {
			continue
		}
		if err := sw.ledger.Delete(record.UserID); err != nil {
			logger.Error(fmt.Sprintf("Falha ao remover progresso de %s: %v", record.UserID, err), "Niveis")
			continue
		}
		removed++
	}

	if removed > 0 {
		logger.Info(fmt.Sprintf("Varredura de inativos removeu %d registros", removed), "Niveis")
	}
}
