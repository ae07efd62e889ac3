package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"simsea/internal/models"
	"simsea/internal/repository"
	"simsea/internal/services"
)

func newCreateAdminCmd() *cobra.Command {
	var username, password, fullName, email string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if password == "" {
				return errors.New("--password is required")
			}
			accounts := services.NewAccountService(repository.NewUserRepository(a.database.DB, a.retry), a.logger)
			user, err := accounts.Register(cmd.Context(), models.RegisterRequest{
				Username: username,
				Password: password,
				FullName: fullName,
				Email:    email,
			}, models.RoleAdmin)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created admin %q (id %d)\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "admin", "account username")
	cmd.Flags().StringVar(&password, "password", "", "account password, at least 8 characters")
	cmd.Flags().StringVar(&fullName, "full-name", "Administrator", "display name")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	return cmd
}
