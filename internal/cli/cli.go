// Package cli командная поверхность deskbird CLI.
// Каждая команда — тонкая обёртка над одним use case: разбор флагов,
// сборка зависимостей, рендер результата. Ошибка печатается одной строкой
// в stderr, процесс завершается с ненулевым кодом.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eternauta1337/skill-deskbird/internal/config"
	"github.com/eternauta1337/skill-deskbird/internal/identity"
	"github.com/eternauta1337/skill-deskbird/internal/integrations/deskbird"
	"github.com/eternauta1337/skill-deskbird/internal/service/directory"
	"github.com/eternauta1337/skill-deskbird/pkg/logger"
)

// app зависимости, общие для всех команд
type app struct {
	cfg       *config.Config
	log       *logger.Logger
	client    *deskbird.Client
	directory *directory.Service
	user      identity.User
	loc       *time.Location
}

// newApp собирает зависимости: конфигурация, логгер, клиент API, справочник,
// идентичность пользователя. Вызывается из RunE каждой команды, чтобы
// help/ошибки разбора флагов не требовали токена
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Close()
		return nil, err
	}

	client := deskbird.NewClient(cfg.BaseURL, cfg.Token, log)

	return &app{
		cfg:       cfg,
		log:       log,
		client:    client,
		directory: directory.NewService(client, log),
		user:      identity.Resolve(identity.DefaultProviders()),
		loc:       loc,
	}, nil
}

func (a *app) close() {
	a.log.Close()
}

// officeID возвращает офис из флага, а при его отсутствии — офис из конфигурации
func (a *app) officeID(flag string) string {
	if flag != "" {
		return flag
	}
	return a.cfg.OfficeID
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "deskbird",
		Short:         "Book desks, rooms and parking through the deskbird API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newListCmd(),
		newBookCmd(),
		newCancelCmd(),
		newCheckinCmd(),
		newMyCmd(),
		newStatusCmd(),
		newOfficesCmd(),
		newResourcesCmd(),
	)
	return root
}

// Execute точка входа CLI
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
