package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hellodocs/flashdeck/internal/auth"
)

func newLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username>",
		Short: "Authenticate and migrate guest progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := restoreSessionStore(cfg)
			if err != nil {
				return err
			}
			ledger, err := loadLedger(cfg)
			if err != nil {
				return err
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			password, err := promptSecret(cmd, "Password: ")
			if err != nil {
				return err
			}

			authenticator := auth.NewAuthenticator(client, store, ledger)
			suffix, err := authenticator.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			if err := saveLedger(cfg, ledger); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s%s\n", store.Current().Username, suffix)
			return nil
		},
	}
}

func newRegisterCommand() *cobra.Command {
	var email string
	command := &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account and migrate guest progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := restoreSessionStore(cfg)
			if err != nil {
				return err
			}
			ledger, err := loadLedger(cfg)
			if err != nil {
				return err
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			password, err := promptSecret(cmd, "Password: ")
			if err != nil {
				return err
			}
			confirmPassword, err := promptSecret(cmd, "Confirm password: ")
			if err != nil {
				return err
			}

			authenticator := auth.NewAuthenticator(client, store, ledger)
			suffix, err := authenticator.Register(cmd.Context(), auth.Profile{
				Username:        args[0],
				Email:           email,
				Password:        password,
				ConfirmPassword: confirmPassword,
			})
			if err != nil {
				return err
			}
			if err := saveLedger(cfg, ledger); err != nil {
				return err
			}

			fmt.Printf("Registered as %s%s\n", store.Current().Username, suffix)
			return nil
		},
	}
	command.Flags().StringVar(&email, "email", "", "email address for the new account")
	return command
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := restoreSessionStore(cfg)
			if err != nil {
				return err
			}
			if store.IsGuest() {
				fmt.Println("Not logged in")
				return nil
			}

			username := store.Current().Username
			authenticator := auth.NewAuthenticator(nil, store, nil)
			if err := authenticator.Logout(); err != nil {
				return err
			}
			fmt.Printf("Logged out %s\n", username)
			return nil
		},
	}
}

func newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := restoreSessionStore(cfg)
			if err != nil {
				return err
			}
			if store.IsGuest() {
				fmt.Println("guest")
				return nil
			}

			current := store.Current()
			fmt.Printf("%s <%s>\n", current.Username, current.Email)
			if current.IsAdmin() {
				fmt.Println("role: ADMIN")
			}
			return nil
		},
	}
}

func newCheckUsernameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-username <username>",
		Short: "Check whether a username is still available",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			if client.CheckUsername(cmd.Context(), args[0]) {
				fmt.Printf("%s is available\n", args[0])
			} else {
				fmt.Printf("%s is taken\n", args[0])
			}
			return nil
		},
	}
}

// promptSecret reads a single line from the command's stdin. Echo is left
// on so the prompt stays scriptable in tests and pipelines.
func promptSecret(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reader.ReadString > %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
