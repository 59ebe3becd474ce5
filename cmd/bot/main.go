// Package main é o ponto de entrada do Ignis. Inicializa todos os
// sistemas e sobe o bot do Discord.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/ignislabs/ignis-go/internal/commands"
	"github.com/ignislabs/ignis-go/internal/economy"
	"github.com/ignislabs/ignis-go/internal/events"
	"github.com/ignislabs/ignis-go/internal/leveling"
	"github.com/ignislabs/ignis-go/internal/radio"
	"github.com/ignislabs/ignis-go/internal/reminders"
	"github.com/ignislabs/ignis-go/pkg/config"
	"github.com/ignislabs/ignis-go/pkg/database"
	"github.com/ignislabs/ignis-go/pkg/discord"
	"github.com/ignislabs/ignis-go/pkg/errors"
	"github.com/ignislabs/ignis-go/pkg/lavalink"
	"github.com/ignislabs/ignis-go/pkg/logger"
	"github.com/ignislabs/ignis-go/pkg/mqtt"
	"github.com/ignislabs/ignis-go/pkg/scheduler"
	"github.com/ignislabs/ignis-go/pkg/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Erro carregando a configuração: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando o Ignis...", "Main")
	logger.Info(fmt.Sprintf("Diretório de trabalho: %s", getCurrentDir()), "Main")

	var discordClient *discord.ExtendedClient
	var lavalinkClient *lavalink.Client
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			_ = discordClient.Stop()
		}
		if lavalinkClient != nil {
			lavalinkClient.Disconnect()
		}
	})

	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		// O wrapper fica tentando reconectar; o bot sobe mesmo assim
		logger.Error(fmt.Sprintf("Erro conectando ao banco: %v", err), "Main")
	}
	defer func() {
		if db != nil {
			_ = db.Disconnect()
		}
	}()

	if db != nil {
		database.InitGlobalDataManagers(db)
	}

	mqttClientID := "ignis"
	if !cfg.IsProd() {
		mqttClientID = "ignis_canary"
	}
	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()
	telemetry := mqtt.NewTelemetry(mqttClient)

	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Erro criando o cliente Discord: %v", err), "Main")
		os.Exit(1)
	}

	sched := scheduler.New(errors.RecoverMiddleware())
	defer sched.StopAll()

	// Economia
	economyService := economy.New(database.GlobalEconomyDM, nil, nil)

	// Sistema de níveis
	directory := leveling.NewSessionDirectory(discordClient.Session)
	ledger := leveling.NewLedger(database.GlobalProgressDM, database.GlobalHistoryDM, directory.ResolveUsername)
	curve := leveling.NewCurve(rand.NewSource(time.Now().UnixNano()))

	roleCache := leveling.NewRoleConfigCache(database.GlobalConfigDM)
	if err := roleCache.Load(); err != nil {
		logger.Warn(fmt.Sprintf("Erro carregando os cargos por nível: %v", err), "Main")
	}
	roleCache.StartRefresh(sched, 5*time.Minute)

	roles := leveling.NewRoleAssigner(directory, roleCache, ledger, cfg.PrimaryGuildID)
	notifier := leveling.NewNotifier(
		discordClient.Session,
		economyService,
		telemetry,
		cfg.AnnounceChannelID,
		rand.NewSource(time.Now().UnixNano()),
	)
	voiceTracker := leveling.NewVoiceTracker(nil)
	sweeper := leveling.NewSweeper(ledger, directory, cfg.PrimaryGuildID)

	levelingService := leveling.NewService(leveling.ServiceDeps{
		Session:  discordClient.Session,
		Ledger:   ledger,
		Curve:    curve,
		Roles:    roles,
		Notifier: notifier,
		Voice:    voiceTracker,
		Sweeper:  sweeper,
		Sched:    sched,
		GuildID:  cfg.PrimaryGuildID,
	})

	// Rádio (o player conecta de fato após o login no Discord)
	radioManager := radio.New(nil, telemetry, sched, nil)

	// Lembretes
	reminderService := reminders.New(
		database.GlobalReminderDM,
		reminders.NewDiscordNotifier(discordClient.Session),
		sched,
		nil,
	)

	// Servidor web
	webServer := web.Init(cfg.LogsWebhook, "")
	web.SetupAPIRoutes(webServer, web.APIDeps{
		Leveling: levelingService,
		Radio:    radioManager,
	})
	webServer.StartAsync(cfg.Port)

	commands.RegisterAll(discordClient, commands.Services{
		Leveling:  levelingService,
		Economy:   economyService,
		Radio:     radioManager,
		Reminders: reminderService,
	})

	events.RegisterAll(events.Deps{
		Client:   discordClient,
		Leveling: levelingService,
		Radio:    radioManager,
		Config:   cfg,
	})

	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Erro iniciando o cliente Discord: %v", err), "Main")
		os.Exit(1)
	}
	defer func() {
		_ = discordClient.Stop()
	}()

	// Lavalink depende da sessão aberta (User-Id no handshake)
	radioPort, err := strconv.Atoi(cfg.RadioNodePort)
	if err != nil {
		radioPort = 2333
	}
	lavalinkClient = lavalink.Init(discordClient.Session, lavalink.NodeConfig{
		Name:     "IgnisRadio",
		Host:     cfg.RadioNodeHost,
		Port:     radioPort,
		Password: cfg.RadioNodePassword,
		Secure:   false,
	})
	lavalinkClient.Connect()
	defer lavalinkClient.Disconnect()

	radioManager.SetPlayer(radio.NewLavalinkPlayer(lavalinkClient))

	levelingService.Start()

	if err := reminderService.LoadPending(); err != nil {
		logger.Warn(fmt.Sprintf("Erro recarregando lembretes: %v", err), "Main")
	}

	logger.Success("Ignis iniciado com sucesso!", "Main")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Desligando o Ignis...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
