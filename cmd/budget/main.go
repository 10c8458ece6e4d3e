package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"budgetdash/internal/app"
	"budgetdash/internal/cli"
	"budgetdash/internal/config"
	"budgetdash/internal/logger"
	"budgetdash/internal/validator"
)

func main() {
	logger.Init("cli")
	defer logger.Sync()

	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	validator.Register()

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(&cli.Services{
		Sessions: a.Sessions,
		Auth:     a.Auth,
		Viewport: a.Viewport,
		Budgets:  a.Budgets,
		Expenses: a.Expenses,
		Goals:    a.Goals,
	})
	if err := root.ExecuteContext(ctx); err != nil {
		cli.PrintError(os.Stderr, err)
		return 1
	}
	return 0
}
