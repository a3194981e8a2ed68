// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/esdb-account-samples/src/internal/connstr"
	x509certs "github.com/H0llyW00dzZ/esdb-account-samples/src/internal/x509/certs"
)

func (a *app) folderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Connect with certificate filenames relative to a folder",
		Long: `Reads a connection string whose tlsCaFile, userCertFile and userKeyFile
parameters name files inside --cert-folder. The CA is removed from the
connection string and handed to the client as its trusted root; the user
certificate and key are rewritten to paths inside the folder.`,
		Example: "  folder --connection-string 'esdb://db:2113?tlsCaFile=ca.crt&userCertFile=user.crt&userKeyFile=user.key' --cert-folder ./certs",
		Args:    cobra.NoArgs,
		RunE:    a.runFolder,
	}
	cmd.Flags().StringVar(&a.opts.connectionString, "connection-string", "", "EventStoreDB connection string (env "+EnvConnectionString+")")
	cmd.Flags().StringVar(&a.opts.certFolder, "cert-folder", "", "folder containing the certificate files")
	return cmd
}

func (a *app) runFolder(cmd *cobra.Command, _ []string) error {
	if err := requireArgs(
		[2]string{"connection-string", a.opts.connectionString},
		[2]string{"cert-folder", a.opts.certFolder},
	); err != nil {
		return err
	}

	resolved, err := connstr.Resolve(a.opts.connectionString, a.opts.certFolder)
	if err != nil {
		return err
	}

	caData, err := x509certs.ReadFile(resolved.CAFile)
	if err != nil {
		return fmt.Errorf("CA file: %w", err)
	}
	certPath, _ := connstr.Param(resolved.ConnectionString, connstr.ParamUserCertFile)
	keyPath, _ := connstr.Param(resolved.ConnectionString, connstr.ParamUserKeyFile)
	if err := a.checkUserCertificate(certPath, keyPath, caData); err != nil {
		return err
	}

	pool, err := x509certs.New().CertPool(caData)
	if err != nil {
		return fmt.Errorf("CA file %s: %w", resolved.CAFile, err)
	}
	return a.run(cmd, resolved.ConnectionString, pool)
}

func (a *app) credentialsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credentials",
		Short: "Connect with a username, password, host and certificate files",
		Long: `Builds the connection string from individual values. The user certificate,
key and CA must be readable files; the CA becomes the client's trusted root.
With --write-bundle the three files are also written as one PEM bundle.`,
		Args: cobra.NoArgs,
		RunE: a.runCredentials,
	}
	f := cmd.Flags()
	f.StringVar(&a.opts.username, "username", "", "EventStoreDB user")
	f.StringVar(&a.opts.password, "password", "", "EventStoreDB password (env "+EnvPassword+")")
	f.StringVar(&a.opts.host, "host", "", "EventStoreDB host[:port]")
	f.StringVar(&a.opts.cert, "cert", "", "user certificate file")
	f.StringVar(&a.opts.key, "key", "", "user private key file")
	f.StringVar(&a.opts.ca, "ca", "", "CA certificate file")
	f.StringVar(&a.opts.writeBundle, "write-bundle", "", "write the cert, key and CA as one PEM file")
	return cmd
}

func (a *app) runCredentials(cmd *cobra.Command, _ []string) error {
	if err := requireArgs(
		[2]string{"username", a.opts.username},
		[2]string{"password", a.opts.password},
		[2]string{"host", a.opts.host},
		[2]string{"cert", a.opts.cert},
		[2]string{"key", a.opts.key},
		[2]string{"ca", a.opts.ca},
	); err != nil {
		return err
	}

	bundle, err := x509certs.LoadBundle(a.opts.cert, a.opts.key, a.opts.ca)
	if err != nil {
		return err
	}
	if err := bundle.NormalizeCA(); err != nil {
		return fmt.Errorf("CA file %s: %w", a.opts.ca, err)
	}
	a.verify(bundle.Cert, bundle.Key, bundle.CA)

	if a.opts.writeBundle != "" {
		if err := os.WriteFile(a.opts.writeBundle, bundle.PEM(), 0600); err != nil {
			return fmt.Errorf("error writing bundle: %w", err)
		}
		a.log.Printf("wrote certificate bundle to %s", a.opts.writeBundle)
	}

	pool, err := x509certs.New().CertPool(bundle.CA)
	if err != nil {
		return fmt.Errorf("CA file %s: %w", a.opts.ca, err)
	}

	cs := connstr.FromCredentials(connstr.Credentials{
		Username: a.opts.username,
		Password: a.opts.password,
		Host:     a.opts.host,
		CertFile: a.opts.cert,
		KeyFile:  a.opts.key,
	})
	return a.run(cmd, cs, pool)
}

func (a *app) rawCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw",
		Short: "Connect with a connection string passed to the client unchanged",
		Long: `Passes --connection-string to the client as is. With --cert-folder, the
tlsCaFile, userCertFile and userKeyFile parameters are first joined with the
folder; all three must then be present.`,
		Args: cobra.NoArgs,
		RunE: a.runRaw,
	}
	cmd.Flags().StringVar(&a.opts.connectionString, "connection-string", "", "EventStoreDB connection string (env "+EnvConnectionString+")")
	cmd.Flags().StringVar(&a.opts.certFolder, "cert-folder", "", "qualify certificate parameters with this folder")
	return cmd
}

func (a *app) runRaw(cmd *cobra.Command, _ []string) error {
	if err := requireArgs([2]string{"connection-string", a.opts.connectionString}); err != nil {
		return err
	}

	cs := a.opts.connectionString
	if a.opts.certFolder != "" {
		qualified, err := connstr.Qualify(cs, a.opts.certFolder)
		if err != nil {
			return err
		}
		cs = qualified
	}
	return a.run(cmd, cs, nil)
}

// checkUserCertificate reads the user certificate and key named by the
// connection string and verifies them against the CA. Unreadable files are
// fatal; verification failures are only reported.
func (a *app) checkUserCertificate(certPath, keyPath string, caData []byte) error {
	certData, err := x509certs.ReadFile(certPath)
	if err != nil {
		return fmt.Errorf("user certificate: %w", err)
	}
	keyData, err := x509certs.ReadFile(keyPath)
	if err != nil {
		return fmt.Errorf("user key: %w", err)
	}
	a.verify(certData, keyData, caData)
	return nil
}

// verify logs a warning when the key does not match the certificate or the
// certificate is not a client certificate issued by the CA. The server may
// still accept it, so neither is fatal.
func (a *app) verify(certData, keyData, caData []byte) {
	if err := x509certs.VerifyKeyPair(certData, keyData); err != nil {
		a.log.Warnf("user certificate and key: %v", err)
	}
	if err := x509certs.VerifyClient(certData, caData); err != nil {
		a.log.Warnf("user certificate: %v", err)
	}
}
