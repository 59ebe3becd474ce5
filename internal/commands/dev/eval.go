package dev

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ignislabs/ignis-go/pkg/config"
	"github.com/ignislabs/ignis-go/pkg/database"
	"github.com/ignislabs/ignis-go/pkg/discord"
	"github.com/ignislabs/ignis-go/pkg/errors"
	"github.com/ignislabs/ignis-go/pkg/logger"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// createEvalCommand creates the /dev eval subcommand
func createEvalCommand() *discord.Command {
	return discord.NewCommand(
		"eval",
		"Avalia código Go dentro do processo (perigoso)",
		"dev",
		evalHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "codigo",
			Description: "Código ou expressão Go a avaliar",
			Required:    true,
		},
	)
}

func evalHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		start := time.Now()

		if !isDev(ctx.User().ID) {
			ctx.ReplyEphemeral("❌ **Acesso negado:** este comando é só para a equipe de desenvolvimento.")
			return
		}

		// Compilar o script pode levar alguns milissegundos
		ctx.Defer()

		code := ctx.GetStringOption("codigo")
		code = strings.TrimPrefix(code, "```go")
		code = strings.TrimPrefix(code, "```")
		code = strings.TrimSuffix(code, "```")
		code = strings.TrimSpace(code)

		i := interp.New(interp.Options{})

		if err := i.Use(stdlib.Symbols); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Erro carregando a stdlib: %v", err))
			return
		}

		// Variáveis do bot disponíveis dentro do script
		botExports := map[string]reflect.Value{
			"Ctx":     reflect.ValueOf(ctx),
			"Bot":     reflect.ValueOf(ctx.Client),
			"Session": reflect.ValueOf(ctx.Session),
			"DB":      reflect.ValueOf(database.Get()),
			"Config":  reflect.ValueOf(config.Get()),
		}

		if err := i.Use(interp.Exports{
			"github.com/ignislabs/ignis-go/internal/commands/dev/dev": botExports,
		}); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Erro registrando variáveis: %v", err))
			return
		}

		if _, err := i.Eval(`import . "github.com/ignislabs/ignis-go/internal/commands/dev"`); err != nil {
			ctx.EditReply(fmt.Sprintf("❌ Erro importando variáveis: %v", err))
			return
		}

		res, err := i.Eval(code)

		var output string
		if err != nil {
			output = fmt.Sprintf("❌ **Erro de execução:**\n```go\n%v\n```", err)
		} else {
			var resStr string
			if res.IsValid() {
				resStr = fmt.Sprintf("%#v", res.Interface())
			} else {
				resStr = "nil"
			}
			if len(resStr) > 1900 {
				resStr = resStr[:1900] + "... (truncado)"
			}

			output = fmt.Sprintf("✅ **Resultado:**\n```go\n%s\n```", resStr)
		}

		logger.Debug(fmt.Sprintf("Eval concluído em %s", time.Since(start)), "DevEval")

		ctx.EditReply(output)
	}()
	return nil
}

// isDev verifica se o usuário é o desenvolvedor configurado
func isDev(userID string) bool {
	cfg := config.Get()
	return cfg.DevUserID != "" && userID == cfg.DevUserID
}
