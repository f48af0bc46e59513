// Command admin is the terminal counterpart of the portal's admin pages:
// it logs in against the auth service and drives technology and event CRUD
// through the catalog service, with client-side search, filters and paging.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ttoweb/techportal/pkg/client"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	app := newCLIApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newCLIApp() *cli.App {
	return &cli.App{
		Name:    "admin",
		Usage:   "Technology transfer portal admin client",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "auth-url", Value: "http://localhost:8080", Usage: "Auth service base URL", EnvVars: []string{"TECHPORTAL_AUTH_URL"}},
			&cli.StringFlag{Name: "catalog-url", Value: "http://localhost:5001", Usage: "Catalog service base URL", EnvVars: []string{"TECHPORTAL_CATALOG_URL"}},
		},
		Commands: []*cli.Command{
			signupCmd(),
			loginCmd(),
			techCmd(),
			eventCmd(),
		},
	}
}

// newClient builds an API client from the global flags and installs any
// saved session token. Token presence is all the CLI checks before showing
// write commands; an expired token simply fails on the next request.
func newClient(c *cli.Context) *client.Client {
	cl := client.New(c.String("auth-url"), c.String("catalog-url"))
	if sess, err := loadSession(); err == nil && sess.JWTToken != "" {
		cl.SetToken(sess.JWTToken)
	}
	return cl
}

func signupCmd() *cli.Command {
	return &cli.Command{
		Name:  "signup",
		Usage: "Register a new admin credential",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(c *cli.Context) error {
			cl := newClient(c)
			if err := cl.Signup(c.Context, c.String("email"), c.String("password")); err != nil {
				return err
			}
			fmt.Println("Sign up successful")
			return nil
		},
	}
}

func loginCmd() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Log in and store the session token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(c *cli.Context) error {
			cl := newClient(c)
			token, err := cl.Login(c.Context, c.String("email"), c.String("password"))
			if err != nil {
				return err
			}
			if err := saveSession(&session{JWTToken: token, Email: c.String("email")}); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			fmt.Println("Login successful (token valid for 5 minutes)")
			return nil
		},
	}
}

// confirm asks for explicit confirmation on stdin unless yes is set.
func confirm(prompt string, yes bool) bool {
	if yes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
