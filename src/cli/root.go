// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/esdb-account-samples/src/internal/account"
	"github.com/H0llyW00dzZ/esdb-account-samples/src/internal/connstr"
	"github.com/H0llyW00dzZ/esdb-account-samples/src/internal/eventstore"
	"github.com/H0llyW00dzZ/esdb-account-samples/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/esdb-account-samples/src/internal/sample"
	"github.com/H0llyW00dzZ/esdb-account-samples/src/logger"
)

// ErrMissingArgument indicates that a required command-line argument was not
// supplied by flag, configuration file, or environment.
var ErrMissingArgument = errors.New("missing required argument")

// options holds flag values after configuration has been merged in.
type options struct {
	configPath  string
	output      string
	logFormat   string
	accountName string
	updates     int
	readCount   uint64
	dryRun      bool

	connectionString string
	certFolder       string
	username         string
	password         string
	host             string
	cert             string
	key              string
	ca               string
	writeBundle      string
}

// app carries the state shared by the subcommands of one invocation.
type app struct {
	opts options
	log  logger.Logger
}

// Execute runs the root command with the process arguments.
//
// The context is passed to every EventStoreDB call, so cancelling it aborts
// the run. The logger receives progress and warnings unless --log-format
// selects a different one.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewCommand(version, log).ExecuteContext(ctx)
}

// NewCommand builds the root command and its subcommands.
func NewCommand(version string, log logger.Logger) *cobra.Command {
	a := &app{log: log}

	rootCmd := &cobra.Command{
		Use:   posix.GetExecutableName(),
		Short: "EventStoreDB account event samples",
		Long: `Appends a new account's events to an EventStoreDB stream and reads them back.

The subcommands differ only in how the connection is described:
  folder       connection string with tlsCaFile, userCertFile and userKeyFile
               relative to a certificate folder
  credentials  username, password, host and individual certificate files
  raw          connection string passed to the client as is`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.prepare,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.opts.configPath, "config", "", "JSON or YAML config file (env "+EnvConfigFile+")")
	pf.StringVar(&a.opts.output, "output", string(sample.FormatText), "event output format: text, table or json")
	pf.StringVar(&a.opts.logFormat, "log-format", logger.FormatText, "log format: text or json")
	pf.StringVar(&a.opts.accountName, "account-name", "Test", "name of the generated account")
	pf.IntVar(&a.opts.updates, "updates", account.DefaultUpdates, "number of balance updates to append")
	pf.Uint64Var(&a.opts.readCount, "read-count", eventstore.DefaultReadCount, "maximum number of events to read back")
	pf.BoolVar(&a.opts.dryRun, "dry-run", false, "use an in-memory store instead of connecting")

	rootCmd.AddCommand(a.folderCommand(), a.credentialsCommand(), a.rawCommand())
	return rootCmd
}

// prepare merges the configuration file and environment into the options
// and selects the logger.
func (a *app) prepare(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.opts.configPath)
	if err != nil {
		return err
	}

	merge := func(name string, dst *string, v string) {
		if !cmd.Flags().Changed(name) && v != "" {
			*dst = v
		}
	}
	merge("connection-string", &a.opts.connectionString, cfg.Connection.ConnectionString)
	merge("cert-folder", &a.opts.certFolder, cfg.Connection.CertFolder)
	merge("username", &a.opts.username, cfg.Connection.Username)
	merge("password", &a.opts.password, cfg.Connection.Password)
	merge("host", &a.opts.host, cfg.Connection.Host)
	merge("cert", &a.opts.cert, cfg.Connection.Cert)
	merge("key", &a.opts.key, cfg.Connection.Key)
	merge("ca", &a.opts.ca, cfg.Connection.CA)
	merge("output", &a.opts.output, cfg.Output.Format)
	merge("log-format", &a.opts.logFormat, cfg.Output.LogFormat)
	merge("account-name", &a.opts.accountName, cfg.Sample.AccountName)
	if !cmd.Flags().Changed("updates") && cfg.Sample.Updates > 0 {
		a.opts.updates = cfg.Sample.Updates
	}
	if !cmd.Flags().Changed("read-count") && cfg.Sample.ReadCount > 0 {
		a.opts.readCount = cfg.Sample.ReadCount
	}

	if _, err := sample.ParseFormat(a.opts.output); err != nil {
		return err
	}
	if a.opts.updates < 1 {
		return fmt.Errorf("--updates must be at least 1, got %d", a.opts.updates)
	}

	if a.log == nil || a.opts.logFormat != logger.FormatText {
		l, err := logger.New(a.opts.logFormat, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		a.log = l
	}
	return nil
}

// requireArgs returns an error wrapping [ErrMissingArgument] naming the first
// empty value, in order.
func requireArgs(args ...[2]string) error {
	for _, arg := range args {
		if arg[1] == "" {
			return fmt.Errorf("%w: --%s", ErrMissingArgument, arg[0])
		}
	}
	return nil
}

// run opens the store and performs the walkthrough.
func (a *app) run(cmd *cobra.Command, connectionString string, rootCAs *x509.CertPool) error {
	store, err := a.openStore(connectionString, rootCAs)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			a.log.Warnf("error closing store: %v", err)
		}
	}()

	r, err := sample.New(sample.Config{
		Store:  store,
		Out:    cmd.OutOrStdout(),
		Log:    a.log,
		Format: sample.Format(a.opts.output),
		Scenario: account.ScenarioOptions{
			Name:    a.opts.accountName,
			Updates: a.opts.updates,
		},
		ReadCount: a.opts.readCount,
	})
	if err != nil {
		return err
	}

	summary, err := r.Run(cmd.Context())
	if err != nil {
		return err
	}
	a.log.Printf("account %s (%s) balance %s after %d updates",
		summary.Account.ID, summary.Account.Name, account.FormatCents(summary.Balance), summary.Updates)
	return nil
}

func (a *app) openStore(connectionString string, rootCAs *x509.CertPool) (eventstore.Store, error) {
	if a.opts.dryRun {
		a.log.Printf("dry run: using in-memory store instead of %s", connstr.Redact(connectionString))
		return eventstore.NewMemory(), nil
	}
	a.log.Printf("connecting to %s", connstr.Redact(connectionString))
	return eventstore.Open(connectionString, eventstore.Options{RootCAs: rootCAs})
}
