package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"lg/lifestyle-tracker-api/internal/store"
)

var (
	newUsername string
	newEmail    string
)

// createUserCmd creates a user with a bcrypt-hashed password. Values not
// given as flags are prompted for on stdin; the password is always prompted.
var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()

		username := newUsername
		if username == "" {
			username = prompt(reader, out, "Username: ")
		}
		email := newEmail
		if email == "" {
			email = prompt(reader, out, "Email: ")
		}
		password := prompt(reader, out, "Password: ")
		if username == "" || password == "" {
			return fmt.Errorf("username and password are required")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}

		return withStore(cmd.Context(), func(s store.Store) error {
			u, err := s.CreateUser(cmd.Context(), store.User{Username: username, Email: email, Password: string(hash)})
			if err != nil {
				return fmt.Errorf("creating user: %w", err)
			}
			fmt.Fprintf(out, "\nUser created successfully!\n")
			fmt.Fprintf(out, "  ID:       %s\n", u.ID)
			fmt.Fprintf(out, "  Username: %s\n", u.Username)
			return nil
		})
	},
}

func init() {
	createUserCmd.Flags().StringVar(&newUsername, "username", "", "Username (prompted when empty)")
	createUserCmd.Flags().StringVar(&newEmail, "email", "", "Email (prompted when empty)")
	rootCmd.AddCommand(createUserCmd)
}

func prompt(r *bufio.Reader, w io.Writer, label string) string {
	fmt.Fprint(w, label)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}
