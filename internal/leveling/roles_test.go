package leveling

import (
	"testing"

	"github.com/ignislabs/ignis-go/pkg/database"
	"github.com/ignislabs/ignis-go/pkg/models"
)

// fakeDirectory registra as mutações de cargo feitas
type fakeDirectory struct {
	granted []string
	revoked []string
	held    map[string]bool
}

func (f *fakeDirectory) GrantRole(guildID, userID, roleID string) error {
	f.granted = append(f.granted, roleID)
	return nil
}

func (f *fakeDirectory) RevokeRole(guildID, userID, roleID string) error {
	f.revoked = append(f.revoked, roleID)
	return nil
}

func (f *fakeDirectory) MemberHasRole(guildID, userID, roleID string) bool {
	return f.held[roleID]
}

// fakeMapping fornece um mapeamento fixo
type fakeMapping struct {
	cargos []models.LevelRole
}

func (f *fakeMapping) Roles() []models.LevelRole {
	return f.cargos
}

// testLedger monta um ledger sobre um banco desconectado; as escritas
// falham com log, o que basta para exercitar o fluxo best-effort
func testLedger() *Ledger {
	db := database.NewDatabase()
	progress := database.NewDataManager[models.UserProgress]("niveis", db)
	history := database.NewDataManager[models.LevelUpHistory]("historico_niveis", db)
	return NewLedger(progress, history, nil)
}

func TestResolveRole(t *testing.T) {
	cargos := []models.LevelRole{
		{Level: 5, RoleID: "bronze"},
		{Level: 20, RoleID: "prata"},
		{Level: 40, RoleID: "ouro"},
	}

	tests := []struct {
		level int
		want  string
	}{
		{0, ""},
		{4, ""},
		{5, "bronze"},
		{19, "bronze"},
		{20, "prata"},
		{39, "prata"},
		{40, "ouro"},
		{80, "ouro"},
	}

	for _, tt := range tests {
		if got := ResolveRole(tt.level, cargos); got != tt.want {
			t.Errorf("ResolveRole(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestAssignForLevelGrantsAndRevokes(t *testing.T) {
	dir := &fakeDirectory{held: map[string]bool{"bronze": true}}
	mapping := &fakeMapping{cargos: []models.LevelRole{
		{Level: 5, RoleID: "bronze"},
		{Level: 20, RoleID: "prata"},
	}}
	assigner := NewRoleAssigner(dir, mapping, testLedger(), "guild1")

	got := assigner.AssignForLevel("user1", 20, "bronze")

	if got != "prata" {
		t.Errorf("AssignForLevel() = %q, want %q", got, "prata")
	}
	if len(dir.granted) != 1 || dir.granted[0] != "prata" {
		t.Errorf("granted = %v, want [prata]", dir.granted)
	}
	if len(dir.revoked) != 1 || dir.revoked[0] != "bronze" {
		t.Errorf("revoked = %v, want [bronze]", dir.revoked)
	}
}

func TestAssignForLevelIsIdempotent(t *testing.T) {
	dir := &fakeDirectory{held: map[string]bool{}}
	mapping := &fakeMapping{cargos: []models.LevelRole{
		{Level: 5, RoleID: "bronze"},
	}}
	assigner := NewRoleAssigner(dir, mapping, testLedger(), "guild1")

	last := assigner.AssignForLevel("user1", 6, "")
	if last != "bronze" {
		t.Fatalf("primeira chamada = %q, want bronze", last)
	}

	// Segunda chamada com o mesmo nível: nenhuma mutação externa
	last = assigner.AssignForLevel("user1", 6, last)
	if last != "bronze" {
		t.Errorf("segunda chamada = %q, want bronze", last)
	}
	if len(dir.granted) != 1 {
		t.Errorf("granted %d vezes, want 1 (idempotência)", len(dir.granted))
	}
	if len(dir.revoked) != 0 {
		t.Errorf("revoked = %v, want vazio", dir.revoked)
	}
}

func TestAssignForLevelNoMapping(t *testing.T) {
	dir := &fakeDirectory{held: map[string]bool{}}
	assigner := NewRoleAssigner(dir, &fakeMapping{}, testLedger(), "guild1")

	got := assigner.AssignForLevel("user1", 10, "antigo")

	if got != "antigo" {
		t.Errorf("AssignForLevel() = %q, want %q (sem mapeamento, no-op)", got, "antigo")
	}
	if len(dir.granted) != 0 || len(dir.revoked) != 0 {
		t.Error("sem mapeamento não deve haver mutações externas")
	}
}

func TestAssignForLevelSkipsRevokeWhenNotHeld(t *testing.T) {
	// O cargo anterior já não está no membro; revogação é pulada
	dir := &fakeDirectory{held: map[string]bool{}}
	mapping := &fakeMapping{cargos: []models.LevelRole{
		{Level: 5, RoleID: "bronze"},
		{Level: 20, RoleID: "prata"},
	}}
	assigner := NewRoleAssigner(dir, mapping, testLedger(), "guild1")

	assigner.AssignForLevel("user1", 20, "bronze")

	if len(dir.revoked) != 0 {
		t.Errorf("revoked = %v, want vazio", dir.revoked)
	}
	if len(dir.granted) != 1 {
		t.Errorf("granted = %v, want [prata]", dir.granted)
	}
}
