package leveling

import (
	"fmt"
	"sync"
	"time"

	"github.com/ignislabs/ignis-go/pkg/database"
	"github.com/ignislabs/ignis-go/pkg/logger"
	"github.com/ignislabs/ignis-go/pkg/models"
	"github.com/ignislabs/ignis-go/pkg/scheduler"
	"go.mongodb.org/mongo-driver/bson"
)

// roleConfigID é o _id do documento de configuração nivel→cargo
const roleConfigID = "nivel_cargos"

// RoleConfigCache mantém o mapeamento nivel→cargo em memória,
// recarregando do banco periodicamente. O documento é configuração
// externa: este subsistema só lê.
type RoleConfigCache struct {
	dm     *database.DataManager[models.LevelRolesConfig]
	mu     sync.RWMutex
	cargos []models.LevelRole
	handle *scheduler.TaskHandle
}

// NewRoleConfigCache creates the cache over the config DataManager
func NewRoleConfigCache(dm *database.DataManager[models.LevelRolesConfig]) *RoleConfigCache {
	return &RoleConfigCache{dm: dm}
}

// Load carrega (ou recarrega) o mapeamento do banco. A ausência do
// documento não é um erro: fica um mapeamento vazio ("nada a fazer").
func (c *RoleConfigCache) Load() error {
	doc, err := c.dm.Get(bson.M{"_id": roleConfigID})
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if doc == nil {
		c.cargos = nil
		logger.Warn("Nenhum mapeamento nivel→cargo configurado", "Niveis")
		return nil
	}

	c.cargos = doc.Cargos
	logger.Info(fmt.Sprintf("Mapeamento nivel→cargo carregado: %d entradas", len(c.cargos)), "Niveis")
	return nil
}

// StartRefresh agenda a recarga periódica do mapeamento
func (c *RoleConfigCache) StartRefresh(sched *scheduler.Scheduler, interval time.Duration) {
	c.handle = sched.Every(interval, "recarga-nivel-cargos", func() {
		if err := c.Load(); err != nil {
			logger.Error("Erro recarregando mapeamento nivel→cargo: "+err.Error(), "Niveis")
		}
	})
}

// StopRefresh cancela a recarga periódica
func (c *RoleConfigCache) StopRefresh() {
	if c.handle != nil {
		c.handle.Stop()
	}
}

// Roles devolve o mapeamento atual
func (c *RoleConfigCache) Roles() []models.LevelRole {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cargos
}
