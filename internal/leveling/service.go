package leveling

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/pkg/errors"
	"github.com/ignislabs/ignis-go/pkg/logger"
	"github.com/ignislabs/ignis-go/pkg/models"
	"github.com/ignislabs/ignis-go/pkg/scheduler"
)

const (
	// messageCooldown é o intervalo mínimo entre grants por mensagem
	messageCooldown = 15 * time.Second
	// sweepInterval é o período da varredura de usuários inativos
	sweepInterval = 24 * time.Hour
)

// Service amarra o pipeline de níveis: heurística de spam, ledger,
// avaliador, cargos e anúncios, mais o acúmulo por voz e a varredura
// diária. Todo o estado mutável (sessões de voz, cooldowns) vive aqui,
// não em globais de processo.
type Service struct {
	session  *discordgo.Session
	ledger   *Ledger
	curve    *Curve
	roles    *RoleAssigner
	notifier *Notifier
	voice    *VoiceTracker
	sweeper  *Sweeper
	sched    *scheduler.Scheduler
	guildID  string
	now      func() time.Time

	cooldownMu   sync.Mutex
	msgCooldowns map[string]time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}

// ServiceDeps agrupa as dependências do serviço de níveis
type ServiceDeps struct {
	Session  *discordgo.Session
	Ledger   *Ledger
	Curve    *Curve
	Roles    *RoleAssigner
	Notifier *Notifier
	Voice    *VoiceTracker
	Sweeper  *Sweeper
	Sched    *scheduler.Scheduler
	GuildID  string
	Now      func() time.Time
	Rand     rand.Source
}

// NewService creates the leveling service
func NewService(deps ServiceDeps) *Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	src := deps.Rand
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Service{
		session:      deps.Session,
		ledger:       deps.Ledger,
		curve:        deps.Curve,
		roles:        deps.Roles,
		notifier:     deps.Notifier,
		voice:        deps.Voice,
		sweeper:      deps.Sweeper,
		sched:        deps.Sched,
		guildID:      deps.GuildID,
		now:          now,
		msgCooldowns: make(map[string]time.Time),
		rng:          rand.New(src),
	}
}

// Voice expõe o rastreador de sessões (eventos de voz e rádio)
func (s *Service) Voice() *VoiceTracker {
	return s.voice
}

// Ledger expõe o ledger de progresso (comandos /nivel e /ranking)
func (s *Service) Ledger() *Ledger {
	return s.ledger
}

// Curve expõe a curva de progressão (exibição de XP necessário)
func (s *Service) Curve() *Curve {
	return s.curve
}

// Start reconstrói as sessões de voz, inicia o tick de acúmulo e
// agenda a varredura de inativos (uma vez agora, depois diária)
func (s *Service) Start() {
	if s.guildID != "" {
		s.voice.Rescan(s.session, []string{s.guildID})
	}

	s.sched.Every(VoiceTickInterval, "acumulo-voz", s.voiceTick)

	if s.sweeper != nil {
		go func() {
			defer errors.RecoverMiddleware()()
			s.sweeper.Sweep()
		}()
		s.sched.Every(sweepInterval, "varredura-inativos", s.sweeper.Sweep)
	}

	logger.System("Sistema de níveis iniciado", "Niveis")
}

// intn sorteia em [0, n) com o gerador do serviço
func (s *Service) intn(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(n)
}

// messageXPAmount sorteia o XP de uma mensagem; a faixa estreita
// conforme o nível sobe
func (s *Service) messageXPAmount(level int) int {
	switch {
	case level >= 60:
		return 5 + s.intn(11) // 5..15
	case level >= 30:
		return 8 + s.intn(18) // 8..25
	default:
		return 10 + s.intn(26) // 10..35
	}
}

// onMessageCooldown verifica e arma o cooldown de mensagem do usuário
func (s *Service) onMessageCooldown(userID string) bool {
	s.cooldownMu.Lock()
	defer s.cooldownMu.Unlock()

	now := s.now()
	if last, ok := s.msgCooldowns[userID]; ok && now.Sub(last) < messageCooldown {
		return true
	}
	s.msgCooldowns[userID] = now
	return false
}

// HandleMessage é o ponto de entrada de XP por mensagem. Nunca deixa
// um erro derrubar o pipeline de eventos: tudo é logado e descartado.
func (s *Service) HandleMessage(m *discordgo.MessageCreate) {
	defer errors.RecoverMiddleware()()

	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID == "" {
		return
	}
	if s.guildID != "" && m.GuildID != s.guildID {
		return
	}

	progress, err := s.ledger.GetOrCreate(m.Author.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("Falha ao carregar progresso de %s: %v", m.Author.ID, err), "Niveis")
		return
	}

	// Atualização preguiçosa do cache de nome
	if progress.Username == "" && m.Author.Username != "" {
		if err := s.ledger.SetUsername(m.Author.ID, m.Author.Username); err == nil {
			progress.Username = m.Author.Username
		}
	}

	if IsSpam(m.Content) {
		return
	}
	if s.onMessageCooldown(m.Author.ID) {
		return
	}

	delta := s.messageXPAmount(progress.Level)
	s.grant(progress, delta, m.GuildID, m.ChannelID)
}

// voiceTick processa um tick de acúmulo por voz. Cada usuário elegível
// roda em sua própria goroutine com recover isolado: a falha de um não
// interrompe o lote.
func (s *Service) voiceTick() {
	for _, grant := range s.voice.DueGrants() {
		g := grant
		go func() {
			defer errors.RecoverMiddleware()()

			progress, err := s.ledger.GetOrCreate(g.UserID)
			if err != nil {
				logger.Error(fmt.Sprintf("Falha ao carregar progresso de %s no tick de voz: %v", g.UserID, err), "Voz")
				return
			}
			s.grant(progress, g.Amount, g.GuildID, g.ChannelID)
		}()
	}
}

// grant aplica um delta de XP e dispara os efeitos de subida de nível
func (s *Service) grant(progress *models.UserProgress, delta int, guildID, originChannelID string) {
	result, err := s.ledger.ApplyXP(progress, delta, s.curve.RequiredXP)
	if err != nil {
		logger.Error(fmt.Sprintf("Falha ao aplicar XP para %s: %v", progress.UserID, err), "Niveis")
		return
	}

	if !result.LeveledUp {
		return
	}

	s.ledger.RecordLevelUp(progress.UserID, progress.Username, guildID, result.NewLevel)
	s.roles.AssignForLevel(progress.UserID, result.NewLevel, progress.LastRole)
	s.notifier.LevelUp(progress.UserID, progress.Username, originChannelID, result.NewLevel)
}
