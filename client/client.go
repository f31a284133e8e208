package client

import (
	"context"
	"net/http"
	"sort"

	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"

	"github.com/weaveworks/kubeapi"
	"github.com/weaveworks/kubeapi/auth"
	"github.com/weaveworks/kubeapi/transport"
)

// Operations is the uniform surface generated for each resource kind.
// Which operations actually work is conditioned on the kind's
// descriptor: List needs a listable kind, and everything that writes
// needs a kind that is not read-only.
type Operations interface {
	Get(ctx context.Context, name, namespace string) (kubeapi.Document, error)
	List(ctx context.Context, namespace string) (kubeapi.Document, error)
	Create(ctx context.Context, data kubeapi.Document, namespace string) (kubeapi.Document, error)
	Apply(ctx context.Context, data kubeapi.Document, namespace string) (kubeapi.Document, error)
	Delete(ctx context.Context, name, namespace string) (transport.Outcome, error)
	Exists(ctx context.Context, name, namespace string) (bool, error)
	Ensure(ctx context.Context, data kubeapi.Document, namespace string) (kubeapi.Document, error)
	Update(ctx context.Context, name, namespace, keyPath string, transform func(interface{}) interface{}) (kubeapi.Document, error)
}

type Config struct {
	// Endpoint is the base URL of the API server, e.g.
	// https://kubernetes.default.svc.
	Endpoint string
	// Executor overrides the HTTP executor otherwise built from the
	// fields below; useful for instrumentation and for tests.
	Executor transport.Executor
	// Client is the HTTP client to issue requests with; nil means the
	// default client.
	Client *http.Client
	// Auth supplies credentials per request; nil means anonymous.
	Auth   auth.Provider
	Logger log.Logger
}

// Client holds one set of Operations per supported kind, built once at
// construction by walking the descriptor table.
type Client struct {
	resources map[string]Operations
}

func New(config Config) (*Client, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	executor := config.Executor
	if executor == nil {
		if config.Endpoint == "" {
			return nil, kubeapi.ConfigErrorf("an endpoint (or an executor) is required")
		}
		executor = transport.NewHTTP(config.Endpoint, config.Client, config.Auth, log.With(logger, "component", "transport"))
	}

	resources := map[string]Operations{}
	for _, d := range kubeapi.Descriptors() {
		ops, err := newResourceOps(d, executor)
		if err != nil {
			return nil, errors.Wrapf(err, "building operations for %q", d.Kind)
		}
		resources[d.Kind] = ops
	}
	return &Client{resources: resources}, nil
}

// Resource returns the Operations for a kind from the descriptor
// table.
func (c *Client) Resource(kind string) (Operations, error) {
	ops, ok := c.resources[kind]
	if !ok {
		return nil, kubeapi.ConfigErrorf("unsupported kind %q", kind)
	}
	return ops, nil
}

// Kinds lists the supported kinds, sorted.
func (c *Client) Kinds() []string {
	var kinds []string
	for kind := range c.resources {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
