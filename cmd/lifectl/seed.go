package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lg/lifestyle-tracker-api/internal/seed"
	"lg/lifestyle-tracker-api/internal/store"
)

var (
	seedUsername string
	seedForce    bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Add the sample dish and exercise library to a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		return withStore(ctx, func(s store.Store) error {
			id, err := userID(ctx, s, seedUsername)
			if err != nil {
				return err
			}
			res, err := seed.New(s).Seed(ctx, id, seedForce)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Message)
			for _, e := range res.Errors {
				fmt.Fprintf(out, "  error: %s\n", e)
			}
			return nil
		})
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedUsername, "username", "", "User to seed")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Seed even when the user already has library data")
	rootCmd.AddCommand(seedCmd)
}
