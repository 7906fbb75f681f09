package main

import (
	"errors"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/abhurtya/real-deal-server-side/auth"
	"github.com/abhurtya/real-deal-server-side/sessions"
)

const emailFlag = "email"

var promoteFlags = map[string]cobraflags.Flag{
	emailFlag: &cobraflags.StringFlag{
		Name:  emailFlag,
		Value: "",
		Usage: "Email of the user to grant the admin role",
	},
}

func newPromoteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant the admin role to an existing user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email := promoteFlags[emailFlag].GetString()
			if email == "" {
				return errors.New("--email is required")
			}

			ctx := cmd.Context()
			a, err := openApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			service := auth.NewService(a.users, sessions.NewStore(a.redis, cfg.SessionTTL), logger)
			user, err := service.Promote(ctx, email)
			if err != nil {
				return err
			}
			logger.Info("user promoted", "user_id", user.ID.Hex(), "email", user.Email)
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, promoteFlags)
	return cmd
}
