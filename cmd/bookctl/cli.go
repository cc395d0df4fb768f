package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/savioruz/bookease/config"
	"github.com/savioruz/bookease/internal/session"
	"github.com/savioruz/bookease/pkg/apiclient"
	"github.com/savioruz/bookease/pkg/logger"
	"github.com/spf13/cobra"
)

type cli struct {
	cfg     *config.ClientConfig
	client  *apiclient.Client
	session *session.Session
	logger  logger.Interface

	in  *bufio.Reader
	out io.Writer
}

func newCLI(cfg *config.ClientConfig, in io.Reader, out, errOut io.Writer, opts ...apiclient.Option) (*cli, error) {
	path := cfg.Client.SessionFile
	if path == "" {
		p, err := session.DefaultPath()
		if err != nil {
			return nil, err
		}

		path = p
	}

	opts = append([]apiclient.Option{apiclient.Timeout(cfg.Client.RequestTimeout)}, opts...)

	return &cli{
		cfg:     cfg,
		client:  apiclient.New(cfg.Client.BaseURL, opts...),
		session: session.New(session.NewFileStore(path)),
		logger:  logger.NewWithWriter(cfg.Log.Level, errOut),
		in:      bufio.NewReader(in),
		out:     out,
	}, nil
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "bookctl",
		Short:         "Book and pay for time slots",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.SetOut(c.out)

	root.AddCommand(
		signupCmd(c),
		loginCmd(c),
		logoutCmd(c),
		whoamiCmd(c),
		slotsCmd(c),
		bookCmd(c),
		adminCmd(c),
	)

	return root
}

func (c *cli) readLine(prompt string) string {
	if prompt != "" {
		c.printf("%s", prompt)
	}

	line, _ := c.in.ReadString('\n')

	return strings.TrimSpace(line)
}

func (c *cli) confirm(prompt string) bool {
	switch strings.ToLower(c.readLine(prompt + " [y/N]: ")) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (c *cli) printf(format string, args ...any) {
	c.fprintf(c.out, format, args...)
}

func (c *cli) fprintf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
