package leveling

import (
	"fmt"

	"github.com/ignislabs/ignis-go/pkg/logger"
	"github.com/ignislabs/ignis-go/pkg/models"
)

// RoleDirectory abstrai as consultas e mutações de cargo no Discord
type RoleDirectory interface {
	GrantRole(guildID, userID, roleID string) error
	RevokeRole(guildID, userID, roleID string) error
	MemberHasRole(guildID, userID, roleID string) bool
}

// RoleMappingSource fornece o mapeamento nivel→cargo configurado
type RoleMappingSource interface {
	Roles() []models.LevelRole
}

// RoleAssigner troca os cargos de nível de um membro quando ele sobe
// de nível, evitando chamadas redundantes à API.
type RoleAssigner struct {
	directory RoleDirectory
	mapping   RoleMappingSource
	ledger    *Ledger
	guildID   string
}

// NewRoleAssigner creates a RoleAssigner
func NewRoleAssigner(directory RoleDirectory, mapping RoleMappingSource, ledger *Ledger, guildID string) *RoleAssigner {
	return &RoleAssigner{
		directory: directory,
		mapping:   mapping,
		ledger:    ledger,
		guildID:   guildID,
	}
}

// ResolveRole devolve o cargo apropriado para um nível: a entrada de
// maior nível com nivel <= level. Vazio quando nenhuma se aplica.
func ResolveRole(level int, cargos []models.LevelRole) string {
	best := ""
	bestLevel := -1
	for _, c := range cargos {
		if c.Level <= level && c.Level > bestLevel {
			best = c.RoleID
			bestLevel = c.Level
		}
	}
	return best
}

// AssignForLevel aplica o cargo do novo nível ao usuário. Idempotente:
// se o cargo resolvido já é o último concedido, nada acontece.
// Revogação e concessão são independentes e best-effort: a falha de
// uma não impede a outra. Devolve o id do último cargo após a chamada.
func (r *RoleAssigner) AssignForLevel(userID string, newLevel int, lastRoleID string) string {
	resolved := ResolveRole(newLevel, r.mapping.Roles())
	if resolved == "" {
		return lastRoleID
	}
	if resolved == lastRoleID {
		return lastRoleID
	}

	if lastRoleID != "" && r.directory.MemberHasRole(r.guildID, userID, lastRoleID) {
		if err := r.directory.RevokeRole(r.guildID, userID, lastRoleID); err != nil {
			logger.Error(fmt.Sprintf("Falha ao revogar cargo %s de %s: %v", lastRoleID, userID, err), "Niveis")
		}
	}

	if err := r.directory.GrantRole(r.guildID, userID, resolved); err != nil {
		logger.Error(fmt.Sprintf("Falha ao conceder cargo %s para %s: %v", resolved, userID, err), "Niveis")
	}

	if err := r.ledger.SetLastRole(userID, resolved); err != nil {
		logger.Error(fmt.Sprintf("Falha ao persistir último cargo de %s: %v", userID, err), "Niveis")
	}

	return resolved
}
