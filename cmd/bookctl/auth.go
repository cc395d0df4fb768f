package main

import (
	"errors"

	"github.com/savioruz/bookease/internal/session"
	"github.com/savioruz/bookease/pkg/apiclient"
	"github.com/spf13/cobra"
)

func signupCmd(c *cli) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = c.readLine("Password: ")
			}

			auth, err := c.client.Signup(cmd.Context(), name, email, password)
			if err != nil {
				return errors.New(apiclient.Message(err))
			}

			return c.storeLogin(auth)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password, prompted when empty")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func loginCmd(c *cli) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = c.readLine("Password: ")
			}

			auth, err := c.client.Login(cmd.Context(), email, password)
			if err != nil {
				return errors.New(apiclient.Message(err))
			}

			return c.storeLogin(auth)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password, prompted when empty")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func logoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := c.session.Logout(); err != nil {
				return err
			}

			c.printf("Logged out.\n")

			return nil
		},
	}
}

func whoamiCmd(c *cli) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := c.session.Profile()
			if err != nil {
				return err
			}

			if remote {
				token, err := c.session.Token()
				if err != nil {
					return err
				}

				u, err := c.client.Profile(cmd.Context(), token)
				if err != nil {
					return errors.New(apiclient.Message(err))
				}

				p = profileOf(u)
			}

			c.printf("%s <%s> (%s)\n", p.Name, p.Email, p.Role)

			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "read the profile from the server")

	return cmd
}

func (c *cli) storeLogin(auth apiclient.Auth) error {
	if err := c.session.Login(auth.Token, profileOf(auth.User)); err != nil {
		return err
	}

	c.printf("Logged in as %s.\n", auth.User.Email)

	return nil
}

func profileOf(u apiclient.User) session.Profile {
	return session.Profile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
