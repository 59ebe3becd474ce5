package leveling

import (
	"fmt"
	"time"

	"github.com/ignislabs/ignis-go/pkg/logger"
	"github.com/ignislabs/ignis-go/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UsernameResolver busca o nome de exibição de um usuário.
// Falha na resolução não é fatal: o campo fica em branco.
type UsernameResolver func(userID string) (string, error)

// ProgressStore é o recorte do DataManager que o Ledger usa para a
// coleção de progresso. *database.DataManager[models.UserProgress]
// satisfaz a interface.
type ProgressStore interface {
	Get(query bson.M) (*models.UserProgress, error)
	GetAll(query bson.M) ([]*models.UserProgress, error)
	GetAllWithOptions(query bson.M, findOpts *options.FindOptions) ([]*models.UserProgress, error)
	Set(query bson.M, data interface{}) (*models.UserProgress, error)
	UpdateOne(filter bson.M, update bson.M) (int64, error)
	Delete(query bson.M) error
}

// HistoryStore grava os registros de auditoria de subida de nível
type HistoryStore interface {
	InsertOne(data interface{}) error
}

// Ledger persiste o progresso de nível dos usuários na coleção
// "niveis" e o histórico de subidas em "historico_niveis".
type Ledger struct {
	progress ProgressStore
	history  HistoryStore
	resolve  UsernameResolver
}

// NewLedger creates a Ledger over the given stores
func NewLedger(progress ProgressStore, history HistoryStore, resolve UsernameResolver) *Ledger {
	return &Ledger{
		progress: progress,
		history:  history,
		resolve:  resolve,
	}
}

// GetOrCreate busca o progresso de um usuário, criando o documento
// com os padrões (nível 0, XP 0) na primeira vez.
func (l *Ledger) GetOrCreate(userID string) (*models.UserProgress, error) {
	doc, err := l.progress.Get(bson.M{"_id": userID})
	if err != nil {
		return nil, err
	}
	if doc != nil {
		return doc, nil
	}

	username := ""
	if l.resolve != nil {
		if name, err := l.resolve(userID); err == nil {
			username = name
		} else {
			logger.Debug(fmt.Sprintf("Não foi possível resolver o nome do usuário %s: %v", userID, err), "Niveis")
		}
	}

	fresh := models.UserProgress{
		UserID:   userID,
		Username: username,
		XP:       0,
		Level:    0,
	}

	doc, err = l.progress.Set(bson.M{"_id": userID}, fresh)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		// Escrita enfileirada em modo offline; segue com o estado local
		doc = &fresh
	}
	return doc, nil
}

// ApplyXP concede um delta de XP, rolando subidas de nível pela curva,
// e persiste {xp, level} com um update condicional. Se outra escrita
// venceu a corrida (grant de voz e de mensagem quase simultâneos), o
// estado é relido e o delta reaplicado uma única vez.
func (l *Ledger) ApplyXP(state *models.UserProgress, delta int, required RequiredFunc) (ApplyResult, error) {
	result := Evaluate(state.Level, state.XP, delta, required)
	if state.Level >= LevelCap || delta <= 0 {
		return result, nil
	}

	matched, err := l.persist(state, result)
	if err != nil {
		return result, err
	}
	if matched > 0 {
		return result, nil
	}

	// Corrida perdida: relê e reaplica o mesmo delta sobre o estado novo
	fresh, err := l.progress.Get(bson.M{"_id": state.UserID})
	if err != nil {
		return result, fmt.Errorf("releitura após corrida falhou: %w", err)
	}
	if fresh == nil {
		// Documento sumiu no meio da corrida (ex.: varredura de inativos)
		return result, fmt.Errorf("releitura após corrida não encontrou o progresso de %s", state.UserID)
	}

	result = Evaluate(fresh.Level, fresh.XP, delta, required)
	if fresh.Level >= LevelCap {
		return result, nil
	}

	matched, err = l.persist(fresh, result)
	if err != nil {
		return result, err
	}
	if matched == 0 {
		logger.Warn(fmt.Sprintf("Concessão de XP para %s descartada após duas corridas perdidas", state.UserID), "Niveis")
	}

	return result, nil
}

// persist grava o novo {xp, level} condicionado ao estado anterior
func (l *Ledger) persist(prev *models.UserProgress, result ApplyResult) (int64, error) {
	filter := bson.M{
		"_id":   prev.UserID,
		"xp":    prev.XP,
		"level": prev.Level,
	}
	update := bson.M{"$set": bson.M{
		"xp":    result.NewXP,
		"level": result.NewLevel,
	}}
	return l.progress.UpdateOne(filter, update)
}

// SetLastRole grava o último cargo concedido ao usuário
func (l *Ledger) SetLastRole(userID, roleID string) error {
	_, err := l.progress.UpdateOne(
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"lastRole": roleID}},
	)
	return err
}

// SetUsername atualiza o cache de nome de exibição
func (l *Ledger) SetUsername(userID, username string) error {
	_, err := l.progress.UpdateOne(
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"username": username}},
	)
	return err
}

// All devolve todos os registros de progresso (varredura de inativos)
func (l *Ledger) All() ([]*models.UserProgress, error) {
	return l.progress.GetAll(bson.M{})
}

// Top devolve os n usuários de maior nível/XP para o ranking
func (l *Ledger) Top(n int) ([]*models.UserProgress, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "level", Value: -1}, {Key: "xp", Value: -1}}).
		SetLimit(int64(n))
	return l.progress.GetAllWithOptions(bson.M{}, opts)
}

// Delete remove o registro de progresso de um usuário
func (l *Ledger) Delete(userID string) error {
	return l.progress.Delete(bson.M{"_id": userID})
}

// RecordLevelUp grava um registro de auditoria de subida de nível.
// Consumido por ferramentas externas; não há caminho de leitura aqui.
func (l *Ledger) RecordLevelUp(userID, username, guildID string, level int) {
	entry := models.LevelUpHistory{
		UserID:    userID,
		Username:  username,
		Level:     level,
		GuildID:   guildID,
		Timestamp: time.Now().Unix(),
	}
	if err := l.history.InsertOne(entry); err != nil {
		logger.Error(fmt.Sprintf("Falha ao gravar histórico de nível para %s: %v", userID, err), "Niveis")
	}
}
