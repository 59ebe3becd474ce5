package leveling

import (
	"errors"
	"testing"

	"github.com/ignislabs/ignis-go/pkg/models"
)

// fakeLister devolve uma lista fixa de membros ou um erro
type fakeLister struct {
	ids   map[string]struct{}
	err   error
	calls int
}

func (f *fakeLister) ListMemberIDs(guildID string) (map[string]struct{}, error) {
	f.calls++
	return f.ids, f.err
}

func TestSweepAbortsWhenMemberListFails(t *testing.T) {
	store := &fakeProgressStore{
		all: []*models.UserProgress{
			{UserID: "a", Level: 3},
			{UserID: "b", Level: 7},
		},
	}
	lister := &fakeLister{err: errors.New("api indisponível")}
	sw := NewSweeper(NewLedger(store, &fakeHistoryStore{}, nil), lister, "g1")

	sw.Sweep()

	if lister.calls != 1 {
		t.Fatalf("ListMemberIDs chamado %d vezes, esperado 1", lister.calls)
	}
	// Na dúvida nada é lido nem apagado
	if store.getAllCalls != 0 {
		t.Errorf("ledger lido %d vezes após falha na listagem", store.getAllCalls)
	}
	if len(store.deletes) != 0 {
		t.Errorf("registros apagados após falha na listagem: %v", store.deletes)
	}
}

func TestSweepRemovesOnlyDepartedMembers(t *testing.T) {
	store := &fakeProgressStore{
		all: []*models.UserProgress{
			{UserID: "a", Level: 3},
			{UserID: "b", Level: 7},
			{UserID: "c", Level: 1},
		},
	}
	lister := &fakeLister{ids: map[string]struct{}{
		"a": {},
		"c": {},
	}}
	sw := NewSweeper(NewLedger(store, &fakeHistoryStore{}, nil), lister, "g1")

	sw.Sweep()

	if len(store.deletes) != 1 {
		t.Fatalf("remoções = %d, esperado 1", len(store.deletes))
	}
	if store.deletes[0]["_id"] != "b" {
		t.Errorf("removido %v, esperado o registro de b", store.deletes[0])
	}
}

func TestSweepSkipsWithoutGuild(t *testing.T) {
	store := &fakeProgressStore{}
	lister := &fakeLister{}
	sw := NewSweeper(NewLedger(store, &fakeHistoryStore{}, nil), lister, "")

	sw.Sweep()

	if lister.calls != 0 {
		t.Errorf("ListMemberIDs chamado sem guild configurada")
	}
}
