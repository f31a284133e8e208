package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"

	"github.com/weaveworks/kubeapi"
	"github.com/weaveworks/kubeapi/auth"
)

// Executor performs one HTTP call described by a Spec. Reconciliation
// logic upstream knows nothing about transport concerns; timeouts,
// rate limits and instrumentation are composed at this boundary.
type Executor interface {
	Execute(ctx context.Context, spec Spec) (Outcome, error)
}

type httpExecutor struct {
	endpoint string
	client   *http.Client
	auth     auth.Provider
	logger   log.Logger
}

// NewHTTP returns an Executor issuing JSON requests against endpoint.
// client and provider may be nil, meaning the default HTTP client and
// anonymous requests respectively.
func NewHTTP(endpoint string, client *http.Client, provider auth.Provider, logger log.Logger) Executor {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &httpExecutor{
		endpoint: endpoint,
		client:   client,
		auth:     provider,
		logger:   logger,
	}
}

func (e *httpExecutor) Execute(ctx context.Context, spec Spec) (Outcome, error) {
	begin := time.Now()
	outcome, err := e.execute(ctx, spec)
	e.logger.Log(
		"method", spec.Method,
		"path", spec.Path,
		"status", outcome.StatusCode,
		"took", time.Since(begin).String(),
		"err", err,
	)
	return outcome, err
}

func (e *httpExecutor) execute(ctx context.Context, spec Spec) (Outcome, error) {
	var outcome Outcome

	u, err := makeURL(e.endpoint, spec.Path)
	if err != nil {
		return outcome, err
	}

	var body []byte
	if spec.Body != nil {
		if body, err = json.Marshal(spec.Body); err != nil {
			return outcome, errors.Wrap(err, "encoding request body")
		}
	}

	// Credentials are resolved afresh for every request, so rotated
	// tokens and certificates take effect on the next call.
	var material auth.Material
	if e.auth != nil {
		if material, err = e.auth.Resolve(); err != nil {
			return outcome, errors.Wrap(err, "resolving credentials")
		}
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, u.String(), bytes.NewReader(body))
	if err != nil {
		return outcome, errors.Wrapf(err, "constructing request %s", u)
	}
	mergeHeaders(req.Header, spec.Headers, material)

	resp, err := e.clientFor(material).Do(req)
	if err != nil {
		return outcome, kubeapi.TransportError(errors.Wrap(err, "executing HTTP request"))
	}
	defer resp.Body.Close()

	outcome.StatusCode = resp.StatusCode
	outcome.Status = resp.Status
	outcome.Header = resp.Header
	if outcome.RawBody, err = ioutil.ReadAll(resp.Body); err != nil {
		return outcome, kubeapi.TransportError(errors.Wrap(err, "reading response body"))
	}
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		var decoded kubeapi.Document
		if json.Unmarshal(outcome.RawBody, &decoded) == nil {
			outcome.Body = decoded
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if spec.Suppress {
			return outcome, nil
		}
		return outcome, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(outcome.RawBody),
		}
	}
	return outcome, nil
}

// makeURL attaches a ready-built path to the endpoint. The path is
// appended verbatim — the operations layer constructs exact segments,
// and the server expects them unencoded and in order.
func makeURL(endpoint, p string) (*url.URL, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing endpoint %s", endpoint)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + p
	return u, nil
}

// mergeHeaders layers the outgoing headers in a fixed order: library
// defaults first, caller-supplied headers next, auth-derived headers
// last. Later layers win per key, so a caller's unrelated headers
// survive alongside an injected Authorization header.
func mergeHeaders(h http.Header, caller map[string]string, material auth.Material) {
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	for k, v := range caller {
		h.Set(k, v)
	}
	if material.Token != "" {
		h.Set("Authorization", "Bearer "+material.Token)
	}
}

// clientFor returns the executor's HTTP client, with the transport
// trust set replaced when the credentials carry their own anchor.
func (e *httpExecutor) clientFor(material auth.Material) *http.Client {
	if material.TrustAnchor == nil {
		return e.client
	}
	base, ok := e.client.Transport.(*http.Transport)
	if !ok {
		base = http.DefaultTransport.(*http.Transport)
	}
	t := base.Clone()
	if t.TLSClientConfig == nil {
		t.TLSClientConfig = &tls.Config{}
	}
	t.TLSClientConfig.RootCAs = material.TrustAnchor

	client := *e.client
	client.Transport = t
	return &client
}
