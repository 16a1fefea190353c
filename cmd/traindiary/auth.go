package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/apiclient"

	"github.com/spf13/cobra"
)

var (
	authEmail    string
	authPassword string
	authUsername string
	authFullName string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(authEmail) == "" {
			return apiclient.ErrMissingEmail
		}
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		creds := apiclient.Credentials{Email: authEmail, Password: passwordFrom(cmd.InOrStdin())}
		result, err := a.client.Login(cmd.Context(), creds)
		if err != nil {
			return err
		}
		if err := a.sessions.SetSession(cmd.Context(), result.Token, result.User); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", displayName(a))
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and store the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(authEmail) == "" {
			return apiclient.ErrMissingEmail
		}
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		input := apiclient.RegisterInput{
			Credentials: apiclient.Credentials{Email: authEmail, Password: passwordFrom(cmd.InOrStdin())},
			Username:    authUsername,
			FullName:    authFullName,
		}
		result, err := a.client.Register(cmd.Context(), input)
		if err != nil {
			return err
		}
		if err := a.sessions.SetSession(cmd.Context(), result.Token, result.User); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as %s\n", displayName(a))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := a.sessions.ClearSession(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		user := a.client.MeOrDefault(cmd.Context(), a.sessions.User())
		out := cmd.OutOrStdout()
		if user != nil {
			fmt.Fprintf(out, "User: %s\n", user.DisplayName())
			fmt.Fprintf(out, "Email: %s\n", user.Email)
		} else {
			fmt.Fprintln(out, "User: unknown")
		}
		if claims, err := a.sessions.Claims(); err == nil && claims.ExpiresAt != nil {
			fmt.Fprintf(out, "Session expires: %s\n", claims.ExpiresAt.Time.Local().Format(time.RFC1123))
		}
		return nil
	},
}

// passwordFrom prefers --password, then TRAINDIARY_PASSWORD, then one line of input.
func passwordFrom(in io.Reader) string {
	if authPassword != "" {
		return authPassword
	}
	if env := os.Getenv("TRAINDIARY_PASSWORD"); env != "" {
		return env
	}
	line, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}

func displayName(a *app) string {
	if user := a.sessions.User(); user != nil {
		return user.DisplayName()
	}
	return authEmail
}

func init() {
	for _, cmd := range []*cobra.Command{loginCmd, registerCmd} {
		cmd.Flags().StringVar(&authEmail, "email", "", "account email")
		cmd.Flags().StringVar(&authPassword, "password", "", "account password (read from input when empty)")
		rootCmd.AddCommand(cmd)
	}
	registerCmd.Flags().StringVar(&authUsername, "username", "", "username")
	registerCmd.Flags().StringVar(&authFullName, "full-name", "", "full name")
	rootCmd.AddCommand(logoutCmd, whoamiCmd)
}
