package cli

import (
	"context"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Ahmed-As3ad/e-commerce/commerce"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Register, login and manage the session",
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a new account. On success the issued token is written to the
keyring and the session is established.

Examples:
  shopctl auth register --name "Ahmed" --email ahmed@example.com --phone 01012345678`,
	RunE: runAuthRegister,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to an existing account",
	RunE:  runAuthLogin,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the session and the persisted token",
	RunE:  runAuthLogout,
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the identity decoded from the persisted token",
	RunE:  runAuthWhoami,
}

var authChangePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Rotate the account password",
	Long: `Rotate the account password. The current session token stays valid
until its natural expiry; you are not logged out.`,
	RunE: runAuthChangePassword,
}

func init() {
	authRegisterCmd.Flags().String("name", "", "display name")
	authRegisterCmd.Flags().String("email", "", "account email")
	authRegisterCmd.Flags().String("phone", "", "mobile number")
	_ = authRegisterCmd.MarkFlagRequired("name")
	_ = authRegisterCmd.MarkFlagRequired("email")
	_ = authRegisterCmd.MarkFlagRequired("phone")

	authLoginCmd.Flags().String("email", "", "account email")
	_ = authLoginCmd.MarkFlagRequired("email")

	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authWhoamiCmd)
	authCmd.AddCommand(authChangePasswordCmd)

	rootCmd.AddCommand(authCmd)
}

// promptPassword reads a password without echoing it.
func promptPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

func runAuthRegister(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")

	password, err := promptPassword("Password")
	if err != nil {
		return err
	}
	rePassword, err := promptPassword("Confirm password")
	if err != nil {
		return err
	}

	sess, err := a.client.Auth.SignUp(context.Background(), commerce.SignUpRequest{
		Name:       name,
		Email:      email,
		Password:   password,
		RePassword: rePassword,
		Phone:      phone,
	})
	if err != nil {
		printError(err)
		return err
	}

	if err := a.keyring.Save(sess.Token); err != nil {
		return err
	}
	a.session.Login()

	if jsonOut {
		return printJSON(map[string]string{"status": "registered", "user": sess.User.Name})
	}
	fmt.Printf("%s Welcome, %s! You are now logged in.\n", colorGreen("✓"), sess.User.Name)
	return nil
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}

	email, _ := cmd.Flags().GetString("email")
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}

	sess, err := a.client.Auth.SignIn(context.Background(), commerce.SignInRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		printError(err)
		return err
	}

	if err := a.keyring.Save(sess.Token); err != nil {
		return err
	}
	a.session.Login()

	if jsonOut {
		return printJSON(map[string]string{"status": "logged_in", "user": sess.User.Name})
	}
	fmt.Printf("%s Logged in as %s\n", colorGreen("✓"), sess.User.Name)
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}

	if err := a.session.Logout(); err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{"status": "logged_out"})
	}
	fmt.Printf("%s Logged out\n", colorGreen("✓"))
	return nil
}

func runAuthWhoami(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}

	claims, err := a.session.Claims()
	if err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"id":      claims.UserID,
			"name":    claims.Name,
			"expires": claims.ExpiresAt,
			"expired": claims.Expired(),
		})
	}

	fmt.Printf("ID:      %s\n", claims.UserID)
	if claims.Name != "" {
		fmt.Printf("Name:    %s\n", claims.Name)
	}
	if !claims.ExpiresAt.IsZero() {
		fmt.Printf("Expires: %s\n", claims.ExpiresAt.Format("2006-01-02 15:04:05"))
	}
	if claims.Expired() {
		fmt.Printf("%s Token is expired\n", colorYellow("!"))
	}
	return nil
}

func runAuthChangePassword(cmd *cobra.Command, args []string) error {
	a, err := getApp()
	if err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	current, err := promptPassword("Current password")
	if err != nil {
		return err
	}
	next, err := promptPassword("New password")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm new password")
	if err != nil {
		return err
	}

	if err := a.session.ChangePassword(context.Background(), current, next, confirm); err != nil {
		printError(err)
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{"status": "password_changed"})
	}
	fmt.Printf("%s Password updated. Your current session stays valid.\n", colorGreen("✓"))
	return nil
}
