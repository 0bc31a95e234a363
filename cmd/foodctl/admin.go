package main

import (
	"os"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"
	"foodbridge/internal/infra/auth"
	"foodbridge/internal/infra/persistence/postgres"
	"foodbridge/internal/usecase"
	"foodbridge/internal/usecase/impl"

	"github.com/spf13/cobra"
)

// adminPasswordEnv keeps the bootstrap password out of shell history.
const adminPasswordEnv = "FOODCTL_ADMIN_PASSWORD"

// bootstrapPrincipal stands in for an administrator when no account exists yet.
var bootstrapPrincipal = entity.Principal{Role: entity.RoleAdmin}

func newCreateAdminCmd() *cobra.Command {
	var name, email string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an ADMIN account",
		Long:  "create-admin creates an ADMIN account. The password is read from " + adminPasswordEnv + ".",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password := os.Getenv(adminPasswordEnv)
			if password == "" {
				return errors.Errorf("%s must be set", adminPasswordEnv)
			}

			var userUC usecase.UserUsecase
			providers := []any{
				postgres.NewUserRepository,
				auth.NewBcryptHasher,
				impl.NewUserService,
			}

			return withApp(cmd.Context(), providers, func() error {
				user, err := userUC.CreateUser(cmd.Context(), bootstrapPrincipal, &usecase.CreateUserInput{
					Name:     name,
					Email:    email,
					Password: password,
					Role:     entity.RoleAdmin,
				})
				if err != nil {
					return err
				}
				cmd.Printf("created admin %s (%s)\n", user.Email, user.ID)

				return nil
			}, &userUC)
		},
	}
	cmd.Flags().StringVar(&name, "name", "Administrator", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Login email")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
