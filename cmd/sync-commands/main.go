// Package main sincroniza os comandos slash com o Discord: remove os
// obsoletos e registra os atuais.
//
// Uso:
//
//	go run cmd/sync-commands/main.go [opções]
//
// Opções:
//
//	-list        Lista os comandos registrados (globais ou de guild)
//	-clean       Remove todos os comandos sem registrar novos
//	-guild <id>  Atua numa guild específica em vez dos globais
//	-sync        Sincroniza (comportamento padrão)
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/internal/commands"
	"github.com/ignislabs/ignis-go/internal/radio"
	"github.com/ignislabs/ignis-go/pkg/config"
	"github.com/ignislabs/ignis-go/pkg/discord"
	"github.com/ignislabs/ignis-go/pkg/logger"
)

func main() {
	listCmd := flag.Bool("list", false, "Lista os comandos registrados")
	cleanCmd := flag.Bool("clean", false, "Remove todos os comandos sem registrar novos")
	guildID := flag.String("guild", "", "Guild alvo (vazio para comandos globais)")
	syncCmd := flag.Bool("sync", false, "Sincroniza os comandos (remove obsoletos, registra atuais)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Erro carregando a configuração: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando a sincronização de comandos...", "SyncCommands")

	client, err := discord.NewClient(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Erro criando o cliente Discord: %v", err), "SyncCommands")
		os.Exit(1)
	}

	if err := client.Session.Open(); err != nil {
		logger.Critical(fmt.Sprintf("Erro conectando ao Discord: %v", err), "SyncCommands")
		os.Exit(1)
	}
	defer client.Session.Close()

	logger.Success("Conectado ao Discord", "SyncCommands")

	// Monta as definições locais; os serviços não são executados aqui
	commands.RegisterAll(client, commands.Services{
		Radio: radio.New(nil, nil, nil, nil),
	})

	switch {
	case *listCmd:
		listCommands(client, *guildID)
	case *cleanCmd:
		cleanCommands(client, *guildID)
	case *syncCmd:
		syncCommands(client, *guildID)
	default:
		syncCommands(client, *guildID)
	}

	logger.Success("Operação concluída", "SyncCommands")
}

// listCommands lists all commands registered with Discord
func listCommands(client *discord.ExtendedClient, guildID string) {
	logger.Info("📋 Listando comandos registrados...", "SyncCommands")

	var cmds []*discordgo.ApplicationCommand
	var err error

	if guildID != "" {
		logger.Info(fmt.Sprintf("Buscando comandos da guild: %s", guildID), "SyncCommands")
		cmds, err = client.CommandHandler.ListGuildCommands(guildID)
	} else {
		logger.Info("Buscando comandos globais", "SyncCommands")
		cmds, err = client.CommandHandler.ListGlobalCommands()
	}

	if err != nil {
		logger.Error(fmt.Sprintf("Erro buscando comandos: %v", err), "SyncCommands")
		return
	}

	if len(cmds) == 0 {
		logger.Info("Nenhum comando registrado", "SyncCommands")
		return
	}

	logger.Info(fmt.Sprintf("Comandos encontrados: %d", len(cmds)), "SyncCommands")
	for i, cmd := range cmds {
		logger.Info(fmt.Sprintf("  %d. /%s - %s (ID: %s)", i+1, cmd.Name, cmd.Description, cmd.ID), "SyncCommands")
	}
}

// cleanCommands removes all commands from Discord
func cleanCommands(client *discord.ExtendedClient, guildID string) {
	logger.Info("🧹 Removendo todos os comandos...", "SyncCommands")

	var err error
	if guildID != "" {
		err = client.CommandHandler.UnregisterGuildCommands(guildID)
	} else {
		err = client.CommandHandler.UnregisterCommands()
	}

	if err != nil {
		logger.Error(fmt.Sprintf("Erro removendo comandos: %v", err), "SyncCommands")
		return
	}

	logger.Success("✅ Todos os comandos foram removidos", "SyncCommands")
}

// syncCommands removes stale commands and registers current ones
func syncCommands(client *discord.ExtendedClient, guildID string) {
	logger.Info("🔄 Sincronizando comandos...", "SyncCommands")

	if guildID != "" {
		logger.Info(fmt.Sprintf("Removendo comandos da guild: %s", guildID), "SyncCommands")
		if err := client.CommandHandler.UnregisterGuildCommands(guildID); err != nil {
			logger.Error(fmt.Sprintf("Erro removendo comandos da guild: %v", err), "SyncCommands")
			return
		}
		logger.Success("✅ Comandos da guild removidos. O bot principal registra os de desenvolvimento ao subir.", "SyncCommands")
		return
	}

	if err := client.CommandHandler.SyncCommands(); err != nil {
		logger.Error(fmt.Sprintf("Erro sincronizando comandos: %v", err), "SyncCommands")
		return
	}
	logger.Success("✅ Comandos sincronizados", "SyncCommands")
}
