package kubeapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func service(name string) Document {
	return Document{
		"kind": "Service",
		"metadata": map[string]interface{}{
			"name":            name,
			"namespace":       "default",
			"resourceVersion": "42",
		},
		"spec": map[string]interface{}{
			"clusterIP": "10.0.0.5",
		},
	}
}

func TestDocumentAccessors(t *testing.T) {
	doc := service("helloworld")
	assert.Equal(t, "helloworld", doc.Name())
	assert.Equal(t, "default", doc.Namespace())
	assert.Equal(t, "42", doc.ResourceVersion())

	ip, ok := doc.GetPath("spec.clusterIP")
	assert.True(t, ok)
	assert.Equal(t, "10.0.0.5", ip)

	_, ok = doc.GetPath("spec.ports")
	assert.False(t, ok)

	assert.Equal(t, "", doc.StringAt("status.phase"))
}

func TestDocumentSetPath(t *testing.T) {
	doc := service("helloworld")
	assert.NoError(t, doc.SetPath("spec.type", "LoadBalancer"))
	assert.Equal(t, "LoadBalancer", doc.StringAt("spec.type"))

	// Intermediate objects get created as needed.
	assert.NoError(t, doc.SetPath("status.loadBalancer.ingress", "1.2.3.4"))
	assert.Equal(t, "1.2.3.4", doc.StringAt("status.loadBalancer.ingress"))
}

func TestDocumentCopyIsolation(t *testing.T) {
	doc := service("helloworld")
	copied, err := doc.Copy()
	assert.NoError(t, err)
	assert.Equal(t, doc.Name(), copied.Name())

	assert.NoError(t, copied.SetPath("metadata.name", "changed"))
	assert.NoError(t, copied.SetPath("spec.clusterIP", "10.9.9.9"))
	assert.Equal(t, "helloworld", doc.Name())
	assert.Equal(t, "10.0.0.5", doc.StringAt("spec.clusterIP"))
}

func TestNilDocument(t *testing.T) {
	var doc Document
	assert.Equal(t, "", doc.Name())
	_, ok := doc.GetPath("metadata.name")
	assert.False(t, ok)
	assert.Error(t, doc.SetPath("metadata.name", "x"))

	copied, err := doc.Copy()
	assert.NoError(t, err)
	assert.Nil(t, copied)
}
