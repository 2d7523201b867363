package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/pkg/auth"
)

var tokenTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token [subject]",
	Short: "Mint a bearer token for the mutating routes",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		if !auth.Enabled() {
			return errors.New("AUTH_SECRET is not set; auth is disabled")
		}

		token, err := auth.GenerateToken(args[0], tokenTTL)
		if err != nil {
			return err
		}

		fmt.Println(token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
