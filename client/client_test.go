package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weaveworks/kubeapi"
	"github.com/weaveworks/kubeapi/transport"
)

type recordingExecutor struct {
	calls   []transport.Spec
	respond func(spec transport.Spec) (transport.Outcome, error)
}

func (e *recordingExecutor) Execute(ctx context.Context, spec transport.Spec) (transport.Outcome, error) {
	e.calls = append(e.calls, spec)
	if e.respond == nil {
		return transport.Outcome{StatusCode: 200}, nil
	}
	return e.respond(spec)
}

func TestNewRequiresEndpointOrExecutor(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
	assert.True(t, kubeapi.IsConfig(err))
}

func TestResourceRegistry(t *testing.T) {
	api, err := New(Config{Executor: &recordingExecutor{}})
	assert.NoError(t, err)

	for _, kind := range []string{"configmap", "daemonset", "deployment", "node", "persistentvolume",
		"persistentvolumeclaim", "petset", "pod", "secret", "service"} {
		ops, err := api.Resource(kind)
		assert.NoError(t, err)
		assert.NotNil(t, ops)
	}

	_, err = api.Resource("replicaset")
	assert.Error(t, err)
	assert.True(t, kubeapi.IsConfig(err))

	kinds := api.Kinds()
	assert.Len(t, kinds, 10)
	assert.Equal(t, "configmap", kinds[0])
	assert.Equal(t, "service", kinds[len(kinds)-1])
}

func TestReadOnlyKind(t *testing.T) {
	executor := &recordingExecutor{}
	ops, err := newResourceOps(kubeapi.Descriptor{
		Kind: "quota", APIPrefix: "/api/v1", Resource: "quotas",
		Namespaced: true, ReadOnly: true, Listable: true,
	}, executor)
	assert.NoError(t, err)

	ctx := context.Background()
	doc := kubeapi.Document{"metadata": map[string]interface{}{"name": "x"}}

	_, err = ops.Create(ctx, doc, "")
	assert.True(t, kubeapi.IsConfig(err))
	_, err = ops.Apply(ctx, doc, "")
	assert.True(t, kubeapi.IsConfig(err))
	_, err = ops.Delete(ctx, "x", "")
	assert.True(t, kubeapi.IsConfig(err))
	_, err = ops.Exists(ctx, "x", "")
	assert.True(t, kubeapi.IsConfig(err))
	_, err = ops.Ensure(ctx, doc, "")
	assert.True(t, kubeapi.IsConfig(err))
	_, err = ops.Update(ctx, "x", "", "spec.size", func(v interface{}) interface{} { return v })
	assert.True(t, kubeapi.IsConfig(err))

	// Nothing made it to the network; reads still work.
	assert.Empty(t, executor.calls)
	_, err = ops.Get(ctx, "x", "")
	assert.NoError(t, err)
	_, err = ops.List(ctx, "")
	assert.NoError(t, err)
}

func TestUnlistableKind(t *testing.T) {
	executor := &recordingExecutor{}
	ops, err := newResourceOps(kubeapi.Descriptor{
		Kind: "binding", APIPrefix: "/api/v1", Resource: "bindings", Namespaced: true,
	}, executor)
	assert.NoError(t, err)

	_, err = ops.List(context.Background(), "")
	assert.True(t, kubeapi.IsConfig(err))
	assert.Empty(t, executor.calls)
}

func TestInvalidDescriptorRejectedAtConstruction(t *testing.T) {
	_, err := newResourceOps(kubeapi.Descriptor{Kind: "broken"}, &recordingExecutor{})
	assert.Error(t, err)
	assert.True(t, kubeapi.IsConfig(err))
}
