package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/mmemodas/storefront/internal/core/ports"
	"github.com/mmemodas/storefront/internal/core/service"
	"github.com/mmemodas/storefront/internal/infrastructure/db"
	"github.com/mmemodas/storefront/internal/pkg/config"
	"github.com/mmemodas/storefront/pkg/logger"
)

const usage = "expected 'add-user' subcommand"

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add-user":
		addUser(os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
}

func addUser(args []string) {
	fs := flag.NewFlagSet("add-user", flag.ExitOnError)
	username := fs.String("username", "", "Username for the new user")
	password := fs.String("password", "", "Password for the new user")
	_ = fs.Parse(args)

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "username and password are required")
		fs.PrintDefaults()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: "warn", Pretty: true})

	store, err := db.Open(ctx, cfg.Store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer store.Close(ctx)

	if cfg.Store.Backend == config.BackendMemory {
		log.Warn().Msg("memory store selected; the user will not outlive this process")
	}

	user, err := service.NewUserService(store.Users(), log).Create(ctx, ports.CreateUserInput{
		Username: *username,
		Password: *password,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create user")
	}

	fmt.Printf("User '%s' created successfully (id %s).\n", user.Username, user.ID)
}
