package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/urfave/cli/v2"

	"rentwise/internal/config"
	"rentwise/internal/infra"
	"rentwise/pkg/logger"
	"rentwise/pkg/utils"
)

func main() {
	app := &cli.App{
		Name:  "rentwisectl",
		Usage: "operational helpers for the rentwise API",
		Commands: []*cli.Command{
			tokenCommand(),
			migrateCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// tokenCommand signs a bearer token the way the identity provider does, for local testing.
func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "print a signed bearer token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sub", Usage: "user id", Required: true},
			&cli.StringFlag{Name: "role", Value: "user"},
			&cli.StringFlag{Name: "first-name"},
			&cli.StringFlag{Name: "last-name"},
			&cli.StringFlag{Name: "email"},
			&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour, Usage: "token lifetime"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Auth.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET is not configured")
			}

			ttl := c.Duration("ttl")
			if ttl <= 0 {
				return fmt.Errorf("ttl must be positive")
			}

			token, err := utils.CreateToken([]byte(cfg.Auth.JWTSecret), utils.Claims{
				Role:      c.String("role"),
				FirstName: c.String("first-name"),
				LastName:  c.String("last-name"),
				Email:     c.String("email"),
				RegisteredClaims: jwt.RegisteredClaims{
					Subject: c.String("sub"),
				},
			}, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "create or update the database schema",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			zl, err := logger.New(cfg.Logging)
			if err != nil {
				return err
			}
			defer zl.Sync()

			dbCfg := cfg.Database
			dbCfg.AutoMigrate = true
			db, err := infra.InitPostgresql(dbCfg, zl)
			if err != nil {
				return err
			}
			infra.ClosePostgresql(db, zl)
			return nil
		},
	}
}
