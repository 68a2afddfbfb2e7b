package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/maheshrc27/postplanner/pkg/utils"
	"github.com/spf13/cobra"
)

func newTokenCommand(ctx *commandContext) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := ctx.requireUser()
			if err != nil {
				return err
			}
			cfg := ctx.ensureConfig()
			if cfg.SecretKey == "" {
				return fmt.Errorf("SECRET_KEY is not set")
			}
			token, err := utils.GenerateToken(cfg.SecretKey, strconv.FormatInt(userID, 10), ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	return cmd
}
