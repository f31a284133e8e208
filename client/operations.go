package client

import (
	"context"
	"net/http"

	"github.com/weaveworks/kubeapi"
	"github.com/weaveworks/kubeapi/transport"
)

type resourceOps struct {
	descriptor kubeapi.Descriptor
	executor   transport.Executor
}

func newResourceOps(d kubeapi.Descriptor, executor transport.Executor) (*resourceOps, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &resourceOps{descriptor: d, executor: executor}, nil
}

// namespaceFor turns the caller's namespace argument into the literal
// path segment: cluster-scoped kinds take none, an empty argument
// means "default", and NoNamespace suppresses scoping explicitly.
func (r *resourceOps) namespaceFor(namespace string) string {
	switch {
	case !r.descriptor.Namespaced:
		return ""
	case namespace == kubeapi.NoNamespace:
		return ""
	case namespace == "":
		return kubeapi.DefaultNamespace
	}
	return namespace
}

func (r *resourceOps) path(namespace, name string) (string, error) {
	return r.descriptor.Path(r.namespaceFor(namespace), name)
}

func (r *resourceOps) writable() error {
	if r.descriptor.ReadOnly {
		return kubeapi.ConfigErrorf("kind %q is read-only", r.descriptor.Kind)
	}
	return nil
}

func (r *resourceOps) Get(ctx context.Context, name, namespace string) (kubeapi.Document, error) {
	p, err := r.path(namespace, name)
	if err != nil {
		return nil, err
	}
	outcome, err := r.executor.Execute(ctx, transport.Spec{Method: "GET", Path: p})
	if err != nil {
		return nil, err
	}
	return outcome.Body, nil
}

func (r *resourceOps) List(ctx context.Context, namespace string) (kubeapi.Document, error) {
	if !r.descriptor.Listable {
		return nil, kubeapi.ConfigErrorf("kind %q is not listable", r.descriptor.Kind)
	}
	p, err := r.path(namespace, "")
	if err != nil {
		return nil, err
	}
	outcome, err := r.executor.Execute(ctx, transport.Spec{Method: "GET", Path: p})
	if err != nil {
		return nil, err
	}
	return outcome.Body, nil
}

func (r *resourceOps) Create(ctx context.Context, data kubeapi.Document, namespace string) (kubeapi.Document, error) {
	if err := r.writable(); err != nil {
		return nil, err
	}
	p, err := r.path(namespace, "")
	if err != nil {
		return nil, err
	}
	outcome, err := r.executor.Execute(ctx, transport.Spec{Method: "POST", Path: p, Body: data})
	if err != nil {
		return nil, err
	}
	return outcome.Body, nil
}

func (r *resourceOps) Apply(ctx context.Context, data kubeapi.Document, namespace string) (kubeapi.Document, error) {
	if err := r.writable(); err != nil {
		return nil, err
	}
	name := data.Name()
	if name == "" {
		return nil, kubeapi.ConfigErrorf("a metadata.name is required to apply a %s", r.descriptor.Kind)
	}
	p, err := r.path(namespace, name)
	if err != nil {
		return nil, err
	}
	outcome, err := r.executor.Execute(ctx, transport.Spec{Method: "PUT", Path: p, Body: data})
	if err != nil {
		return nil, err
	}
	return outcome.Body, nil
}

func (r *resourceOps) Delete(ctx context.Context, name, namespace string) (transport.Outcome, error) {
	if err := r.writable(); err != nil {
		return transport.Outcome{}, err
	}
	p, err := r.path(namespace, name)
	if err != nil {
		return transport.Outcome{}, err
	}
	return r.executor.Execute(ctx, transport.Spec{Method: "DELETE", Path: p})
}

// Exists reports whether the named resource is there. Any HTTP answer
// is a valid answer — a 404 (or anything else non-200) collapses to
// false rather than an error. Transport failures still surface.
func (r *resourceOps) Exists(ctx context.Context, name, namespace string) (bool, error) {
	if err := r.writable(); err != nil {
		return false, err
	}
	p, err := r.path(namespace, name)
	if err != nil {
		return false, err
	}
	outcome, err := r.executor.Execute(ctx, transport.Spec{Method: "GET", Path: p, Suppress: true})
	if err != nil {
		return false, err
	}
	return outcome.StatusCode == http.StatusOK, nil
}
