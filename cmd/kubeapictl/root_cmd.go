package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/spf13/cobra"

	"github.com/weaveworks/kubeapi/auth"
	"github.com/weaveworks/kubeapi/client"
)

const EnvVariableURL = "KUBEAPI_URL"

type rootOpts struct {
	URL     string
	Token   string
	CACert  string
	AuthTTL time.Duration
	Verbose bool

	API *client.Client
}

func newRoot() *rootOpts {
	return &rootOpts{}
}

var rootLongHelp = strings.TrimSpace(`
kubeapictl talks to a Kubernetes-style cluster API.

Workflow:
  kubeapictl list pod                         # What's running in the default namespace?
  kubeapictl get service -n kube-system dns   # Look at one resource.
  kubeapictl ensure -f service.yaml           # Create it, or converge it.
`)

func (opts *rootOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "kubeapictl",
		Long:              rootLongHelp,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.PersistentPreRunE,
	}
	cmd.PersistentFlags().StringVarP(&opts.URL, "url", "u", "https://kubernetes.default.svc",
		fmt.Sprintf("base URL of the cluster API server; you can also set the environment variable %s", EnvVariableURL))
	cmd.PersistentFlags().StringVar(&opts.Token, "token-file", "",
		"path to a bearer token file; defaults to the in-cluster location")
	cmd.PersistentFlags().StringVar(&opts.CACert, "ca-file", "",
		"path to a CA certificate file; defaults to the in-cluster location")
	cmd.PersistentFlags().DurationVar(&opts.AuthTTL, "auth-ttl", 0,
		"cache resolved credentials for this long; 0 re-reads them on every request")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"log each API request to stderr")

	cmd.AddCommand(
		newGet(opts).Command(),
		newList(opts).Command(),
		newDelete(opts).Command(),
		newExists(opts).Command(),
		newApply(opts).Command(),
		newEnsure(opts).Command(),
	)

	return cmd
}

func (opts *rootOpts) PersistentPreRunE(cmd *cobra.Command, _ []string) error {
	url := os.Getenv(EnvVariableURL)
	if cmd.Flags().Changed("url") || url == "" {
		url = opts.URL
	}

	var logger log.Logger = log.NewNopLogger()
	if opts.Verbose {
		logger = log.NewLogfmtLogger(os.Stderr)
		logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	}

	var provider auth.Provider = auth.FileProvider{TokenPath: opts.Token, CACertPath: opts.CACert}
	if opts.AuthTTL > 0 {
		provider = auth.NewCached(provider, opts.AuthTTL)
	}

	var err error
	opts.API, err = client.New(client.Config{
		Endpoint: url,
		Auth:     provider,
		Logger:   logger,
	})
	return err
}
