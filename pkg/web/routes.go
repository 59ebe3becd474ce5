package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ignislabs/ignis-go/internal/leveling"
	"github.com/ignislabs/ignis-go/internal/radio"
	"github.com/ignislabs/ignis-go/pkg/database"
	"github.com/ignislabs/ignis-go/pkg/discord"
)

// APIDeps são os serviços expostos pela API
type APIDeps struct {
	Leveling *leveling.Service
	Radio    *radio.Manager
}

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server, deps APIDeps) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/ranking", rankingHandler(deps.Leveling))
		api.GET("/radio/:guildId", radioHandler(deps.Radio))
	}
}

// statusHandler returns the bot and database status
func statusHandler(c *gin.Context) {
	db := database.Get()
	client := discord.Get()

	dbStatus, dbOnline := db.GetStatus()

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
		},
		"bot": gin.H{
			"isOnline": botOnline,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Ignis está no ar",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "O bot não está disponível no momento.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// rankingHandler devolve os primeiros colocados do ranking de níveis
func rankingHandler(svc *leveling.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Sistema de níveis indisponível.",
			})
			return
		}

		limit := 10
		if raw := c.Query("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
				limit = parsed
			}
		}

		top, err := svc.Ledger().Top(limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Falha ao carregar o ranking.",
			})
			return
		}

		entries := make([]gin.H, 0, len(top))
		for i, p := range top {
			entries = append(entries, gin.H{
				"position": i + 1,
				"userId":   p.UserID,
				"username": p.Username,
				"level":    p.Level,
				"xp":       p.XP,
			})
		}

		c.JSON(http.StatusOK, gin.H{"ranking": entries})
	}
}

// radioHandler devolve o estado da rádio de uma guild
func radioHandler(m *radio.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Rádio indisponível.",
			})
			return
		}

		info := m.Info(c.Param("guildId"))
		if info == nil {
			c.JSON(http.StatusOK, gin.H{"playing": false})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"playing":   true,
			"station":   info.Station.Name,
			"track":     info.TrackTitle,
			"listeners": info.Listeners,
			"startedAt": info.StartedAt,
		})
	}
}
