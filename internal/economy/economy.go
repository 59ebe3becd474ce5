// Package economy implementa as contas de moedas dos usuários: créditos
// de recompensa, débitos, saldo e o resgate diário.
package economy

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ignislabs/ignis-go/pkg/database"
	"github.com/ignislabs/ignis-go/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	// DailyCooldown é o intervalo mínimo entre resgates do /diario
	DailyCooldown = 24 * time.Hour

	dailyMin = 100
	dailyMax = 250
)

// ErrInsufficientFunds indica que o débito excederia o saldo da conta
var ErrInsufficientFunds = fmt.Errorf("saldo insuficiente")

// ErrDailyOnCooldown indica que o resgate diário ainda não venceu
var ErrDailyOnCooldown = fmt.Errorf("resgate diário em cooldown")

// Service gerencia as contas de moedas. Todas as mutações de saldo são
// atômicas no servidor ($inc com filtro condicional), nunca
// read-modify-write no cliente.
type Service struct {
	accounts *database.DataManager[models.EconomyAccount]
	now      func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates the economy service. now and src may be nil.
func New(accounts *database.DataManager[models.EconomyAccount], now func() time.Time, src rand.Source) *Service {
	if now == nil {
		now = time.Now
	}
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Service{
		accounts: accounts,
		now:      now,
		rng:      rand.New(src),
	}
}

// Credit adiciona moedas à conta do usuário, criando-a se preciso.
// Satisfaz a interface de recompensa do sistema de níveis.
func (s *Service) Credit(userID string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("crédito inválido: %d", amount)
	}

	_, err := s.accounts.FindOneAndUpdate(
		bson.M{"_id": userID},
		bson.M{"$inc": bson.M{"saldo": amount}},
		true,
	)
	return err
}

// Debit remove moedas da conta. O filtro exige saldo suficiente, então
// um débito concorrente nunca deixa a conta negativa.
func (s *Service) Debit(userID string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("débito inválido: %d", amount)
	}

	matched, err := s.accounts.UpdateOne(
		bson.M{"_id": userID, "saldo": bson.M{"$gte": amount}},
		bson.M{"$inc": bson.M{"saldo": -amount}},
	)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrInsufficientFunds
	}
	return nil
}

// Balance devolve o saldo atual do usuário. Conta inexistente é saldo
// zero, não erro.
func (s *Service) Balance(userID string) (int64, error) {
	account, err := s.accounts.Get(bson.M{"_id": userID})
	if err != nil {
		return 0, err
	}
	if account == nil {
		return 0, nil
	}
	return account.Balance, nil
}

// dailyAmount sorteia o valor do resgate diário
func (s *Service) dailyAmount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(dailyMin + s.rng.Intn(dailyMax-dailyMin+1))
}

// ClaimDaily resgata a recompensa diária. O cooldown é verificado no
// próprio filtro do update, então dois resgates simultâneos nunca
// pagam duas vezes. Devolve o valor pago e o novo saldo.
func (s *Service) ClaimDaily(userID string) (int64, int64, error) {
	nowUnix := s.now().Unix()
	threshold := nowUnix - int64(DailyCooldown.Seconds())
	amount := s.dailyAmount()

	// Conta nova ou com ultimoDaily vencido
	matched, err := s.accounts.UpdateOne(
		bson.M{
			"_id": userID,
			"$or": []bson.M{
				{"ultimoDaily": bson.M{"$exists": false}},
				{"ultimoDaily": bson.M{"$lte": threshold}},
			},
		},
		bson.M{
			"$inc": bson.M{"saldo": amount},
			"$set": bson.M{"ultimoDaily": nowUnix},
		},
	)
	if err != nil {
		return 0, 0, err
	}

	if matched == 0 {
		// Ou a conta não existe ainda, ou o cooldown segura o resgate
		account, err := s.accounts.Get(bson.M{"_id": userID})
		if err != nil {
			return 0, 0, err
		}
		if account != nil {
			return 0, account.Balance, ErrDailyOnCooldown
		}

		created, err := s.accounts.FindOneAndUpdate(
			bson.M{"_id": userID},
			bson.M{
				"$inc": bson.M{"saldo": amount},
				"$set": bson.M{"ultimoDaily": nowUnix},
			},
			true,
		)
		if err != nil {
			return 0, 0, err
		}
		return amount, created.Balance, nil
	}

	balance, err := s.Balance(userID)
	if err != nil {
		// O pagamento já aconteceu; o saldo é apenas informativo
		return amount, 0, nil
	}
	return amount, balance, nil
}

// NextDaily informa quando o próximo resgate fica disponível
func (s *Service) NextDaily(userID string) (time.Time, error) {
	account, err := s.accounts.Get(bson.M{"_id": userID})
	if err != nil {
		return time.Time{}, err
	}
	if account == nil || account.LastDaily == 0 {
		return s.now(), nil
	}
	return time.Unix(account.LastDaily, 0).Add(DailyCooldown), nil
}
