package leveling

import (
	"strings"
	"testing"

	"github.com/ignislabs/ignis-go/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeProgressStore roteiriza os retornos de UpdateOne e registra as
// chamadas feitas contra a coleção de progresso
type fakeProgressStore struct {
	doc        *models.UserProgress
	all        []*models.UserProgress
	updateRets []int64

	getCalls    int
	getAllCalls int
	updates     []bson.M
	deletes     []bson.M
}

func (f *fakeProgressStore) Get(query bson.M) (*models.UserProgress, error) {
	f.getCalls++
	return f.doc, nil
}

func (f *fakeProgressStore) GetAll(query bson.M) ([]*models.UserProgress, error) {
	f.getAllCalls++
	return f.all, nil
}

func (f *fakeProgressStore) GetAllWithOptions(query bson.M, findOpts *options.FindOptions) ([]*models.UserProgress, error) {
	f.getAllCalls++
	return f.all, nil
}

func (f *fakeProgressStore) Set(query bson.M, data interface{}) (*models.UserProgress, error) {
	if doc, ok := data.(models.UserProgress); ok {
		return &doc, nil
	}
	return nil, nil
}

func (f *fakeProgressStore) UpdateOne(filter bson.M, update bson.M) (int64, error) {
	f.updates = append(f.updates, filter)
	if len(f.updateRets) == 0 {
		return 1, nil
	}
	ret := f.updateRets[0]
	f.updateRets = f.updateRets[1:]
	return ret, nil
}

func (f *fakeProgressStore) Delete(query bson.M) error {
	f.deletes = append(f.deletes, query)
	return nil
}

type fakeHistoryStore struct {
	entries []interface{}
}

func (f *fakeHistoryStore) InsertOne(data interface{}) error {
	f.entries = append(f.entries, data)
	return nil
}

func TestApplyXPPersistsAgainstPreviousState(t *testing.T) {
	store := &fakeProgressStore{updateRets: []int64{1}}
	ledger := NewLedger(store, &fakeHistoryStore{}, nil)

	state := &models.UserProgress{UserID: "u1", Level: 2, XP: 90}
	result, err := ledger.ApplyXP(state, 20, fixedRequired(100))
	if err != nil {
		t.Fatalf("ApplyXP() error = %v", err)
	}

	if result.NewLevel != 3 || result.NewXP != 10 {
		t.Errorf("resultado = nível %d com %d XP, esperado nível 3 com 10 XP", result.NewLevel, result.NewXP)
	}
	if len(store.updates) != 1 {
		t.Fatalf("UpdateOne chamado %d vezes, esperado 1", len(store.updates))
	}
	filter := store.updates[0]
	if filter["_id"] != "u1" || filter["xp"] != 90 || filter["level"] != 2 {
		t.Errorf("filtro condicional = %v, esperado {_id u1, xp 90, level 2}", filter)
	}
	if store.getCalls != 0 {
		t.Errorf("releitura feita sem corrida perdida (%d chamadas)", store.getCalls)
	}
}

func TestApplyXPRetriesOnceOnLostRace(t *testing.T) {
	// Outra escrita venceu a primeira tentativa; o estado relido já
	// carrega 95 XP e o mesmo delta é reaplicado sobre ele
	store := &fakeProgressStore{
		updateRets: []int64{0, 1},
		doc:        &models.UserProgress{UserID: "u1", Level: 2, XP: 95},
	}
	ledger := NewLedger(store, &fakeHistoryStore{}, nil)

	state := &models.UserProgress{UserID: "u1", Level: 2, XP: 90}
	result, err := ledger.ApplyXP(state, 20, fixedRequired(100))
	if err != nil {
		t.Fatalf("ApplyXP() error = %v", err)
	}

	if result.NewLevel != 3 || result.NewXP != 15 {
		t.Errorf("resultado = nível %d com %d XP, esperado nível 3 com 15 XP", result.NewLevel, result.NewXP)
	}
	if store.getCalls != 1 {
		t.Errorf("releituras = %d, esperado 1", store.getCalls)
	}
	if len(store.updates) != 2 {
		t.Fatalf("UpdateOne chamado %d vezes, esperado 2", len(store.updates))
	}
	retry := store.updates[1]
	if retry["xp"] != 95 || retry["level"] != 2 {
		t.Errorf("filtro da segunda tentativa = %v, esperado {xp 95, level 2}", retry)
	}
}

func TestApplyXPGivesUpAfterSecondLostRace(t *testing.T) {
	store := &fakeProgressStore{
		updateRets: []int64{0, 0},
		doc:        &models.UserProgress{UserID: "u1", Level: 2, XP: 95},
	}
	ledger := NewLedger(store, &fakeHistoryStore{}, nil)

	state := &models.UserProgress{UserID: "u1", Level: 2, XP: 90}
	if _, err := ledger.ApplyXP(state, 20, fixedRequired(100)); err != nil {
		t.Fatalf("ApplyXP() error = %v, a desistência não é um erro", err)
	}
	if len(store.updates) != 2 {
		t.Errorf("UpdateOne chamado %d vezes, esperado exatamente 2", len(store.updates))
	}
	if store.getCalls != 1 {
		t.Errorf("releituras = %d, esperado 1", store.getCalls)
	}
}

func TestApplyXPErrorsWhenRecordVanishesMidRace(t *testing.T) {
	// Documento removido entre a tentativa e a releitura, por exemplo
	// pela varredura de inativos
	store := &fakeProgressStore{updateRets: []int64{0}}
	ledger := NewLedger(store, &fakeHistoryStore{}, nil)

	state := &models.UserProgress{UserID: "u1", Level: 2, XP: 90}
	_, err := ledger.ApplyXP(state, 20, fixedRequired(100))
	if err == nil {
		t.Fatal("ApplyXP() sem erro com o registro sumido")
	}
	if strings.Contains(err.Error(), "%!w") {
		t.Errorf("mensagem de erro malformada: %q", err.Error())
	}
}
