package leveling

import (
	"github.com/bwmarrin/discordgo"
)

// SessionDirectory adapta a sessão do discordgo para as interfaces de
// cargo e de listagem de membros usadas pelo subsistema de níveis.
type SessionDirectory struct {
	session *discordgo.Session
}

// NewSessionDirectory creates the adapter
func NewSessionDirectory(session *discordgo.Session) *SessionDirectory {
	return &SessionDirectory{session: session}
}

// GrantRole adds a role to a guild member
func (d *SessionDirectory) GrantRole(guildID, userID, roleID string) error {
	return d.session.GuildMemberRoleAdd(guildID, userID, roleID)
}

// RevokeRole removes a role from a guild member
func (d *SessionDirectory) RevokeRole(guildID, userID, roleID string) error {
	return d.session.GuildMemberRoleRemove(guildID, userID, roleID)
}

// MemberHasRole reports whether the member currently holds the role.
// Consulta primeiro o estado em cache; cai para a API quando preciso.
func (d *SessionDirectory) MemberHasRole(guildID, userID, roleID string) bool {
	member, err := d.session.State.Member(guildID, userID)
	if err != nil {
		member, err = d.session.GuildMember(guildID, userID)
		if err != nil {
			return false
		}
	}
	for _, r := range member.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}

// ResolveUsername busca o nome de exibição de um usuário
func (d *SessionDirectory) ResolveUsername(userID string) (string, error) {
	user, err := d.session.User(userID)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// ListMemberIDs enumera todos os membros atuais do servidor, paginando
// a API em lotes de 1000
func (d *SessionDirectory) ListMemberIDs(guildID string) (map[string]struct{}, error) {
	ids := make(map[string]struct{})
	after := ""

	for {
		members, err := d.session.GuildMembers(guildID, after, 1000)
		if err != nil {
			return nil, err
		}
		if len(members) == 0 {
			break
		}
		for _, m := range members {
			ids[m.User.ID] = struct{}{}
			after = m.User.ID
		}
		if len(members) < 1000 {
			break
		}
	}

	return ids, nil
}
