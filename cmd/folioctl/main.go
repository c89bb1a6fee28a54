// Command folioctl is the admin console of the portfolio service.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/artem13815/portfolio/pkg/admin"
	"github.com/artem13815/portfolio/pkg/client"
	"github.com/artem13815/portfolio/pkg/session"
)

// app is built once flags and environment are parsed.
type app struct {
	api   *client.Client
	sess  *session.Session
	shell *admin.Shell
	in    *bufio.Reader
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "folioctl", "session.yaml")
}

func newApp() *app {
	sess := session.New(session.NewFileStore(viper.GetString("session_file")))
	api := client.New(viper.GetString("api_url"),
		client.WithTokenSource(sess),
		client.WithSubject(viper.GetInt64("subject_id")),
		client.WithTimeout(viper.GetDuration("timeout")),
	)
	return &app{api: api, sess: sess, shell: admin.NewShell(api, sess), in: bufio.NewReader(os.Stdin)}
}

// Confirm asks on stdin; anything but y/yes declines.
func (a *app) Confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	line, _ := a.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func (a *app) workspace() (*admin.Workspace, error) {
	ws, err := a.shell.Workspace()
	if err != nil {
		return nil, fmt.Errorf("%w: run folioctl login", err)
	}
	return ws, nil
}

func rootCmd() *cobra.Command {
	var a *app
	root := &cobra.Command{
		Use:           "folioctl",
		Short:         "Manage the portfolio: projects, skills, links, experience and blog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			*a = *newApp()
		},
	}
	a = &app{}

	flags := root.PersistentFlags()
	flags.String("api-url", "http://localhost:8080/api", "portfolio API base URL")
	flags.Int64("subject-id", client.DefaultSubject, "owner user id")
	flags.String("session-file", defaultSessionFile(), "where the admin token is kept")
	flags.Duration("timeout", 15*time.Second, "HTTP timeout")
	for key, flag := range map[string]string{
		"api_url":      "api-url",
		"subject_id":   "subject-id",
		"session_file": "session-file",
		"timeout":      "timeout",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			log.Fatalf("bind flag %s: %v", flag, err)
		}
	}

	root.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		profileCmd(a),
		projectsCmd(a),
		skillsCmd(a),
		linksCmd(a),
		experienceCmd(a),
		blogsCmd(a),
	)
	return root
}

func main() {
	log.SetFlags(0)
	viper.SetEnvPrefix("FOLIO")
	viper.AutomaticEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		stop()
		log.Fatalf("folioctl: %v", describe(err))
	}
}
