package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/weaveworks/kubeapi"
	"github.com/weaveworks/kubeapi/transport"
)

// fakeAPIServer routes requests the way a real API server lays out its
// paths, so the operations are exercised end to end over HTTP.
func fakeAPIServer() (*mux.Router, *httptest.Server) {
	router := mux.NewRouter()
	server := httptest.NewServer(router)
	return router, server
}

func respondJSON(w http.ResponseWriter, format string, args ...interface{}) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, format, args...)
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	api, err := New(Config{Executor: transport.NewHTTP(server.URL, nil, nil, nil)})
	assert.NoError(t, err)
	return api
}

func TestGetHitsResourcePath(t *testing.T) {
	router, server := fakeAPIServer()
	defer server.Close()
	router.HandleFunc("/api/v1/namespaces/{namespace}/pods/{name}", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"kind":"Pod","metadata":{"name":%q,"namespace":%q}}`,
			mux.Vars(r)["name"], mux.Vars(r)["namespace"])
	}).Methods("GET")

	pods, err := newTestClient(t, server).Resource("pod")
	assert.NoError(t, err)

	// An empty namespace means "default".
	doc, err := pods.Get(context.Background(), "nginx", "")
	assert.NoError(t, err)
	assert.Equal(t, "nginx", doc.Name())
	assert.Equal(t, "default", doc.Namespace())

	doc, err = pods.Get(context.Background(), "nginx", "monitoring")
	assert.NoError(t, err)
	assert.Equal(t, "monitoring", doc.Namespace())
}

func TestGetWithoutNamespaceScoping(t *testing.T) {
	router, server := fakeAPIServer()
	defer server.Close()
	router.HandleFunc("/api/v1/pods/nginx", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"kind":"Pod","metadata":{"name":"nginx"}}`)
	}).Methods("GET")

	pods, _ := newTestClient(t, server).Resource("pod")
	doc, err := pods.Get(context.Background(), "nginx", kubeapi.NoNamespace)
	assert.NoError(t, err)
	assert.Equal(t, "nginx", doc.Name())
}

func TestClusterScopedKindIgnoresNamespace(t *testing.T) {
	router, server := fakeAPIServer()
	defer server.Close()
	router.HandleFunc("/api/v1/nodes/minikube", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"kind":"Node","metadata":{"name":"minikube"}}`)
	}).Methods("GET")

	nodes, _ := newTestClient(t, server).Resource("node")
	doc, err := nodes.Get(context.Background(), "minikube", "default")
	assert.NoError(t, err)
	assert.Equal(t, "minikube", doc.Name())
}

func TestListHitsCollectionPath(t *testing.T) {
	router, server := fakeAPIServer()
	defer server.Close()
	router.HandleFunc("/apis/extensions/v1beta1/namespaces/default/deployments", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"kind":"DeploymentList","items":[{"metadata":{"name":"helloworld"}}]}`)
	}).Methods("GET")

	deployments, _ := newTestClient(t, server).Resource("deployment")
	doc, err := deployments.List(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, "DeploymentList", doc.StringAt("kind"))
}

func TestCreatePostsToCollection(t *testing.T) {
	router, server := fakeAPIServer()
	defer server.Close()
	var received kubeapi.Document
	router.HandleFunc("/api/v1/namespaces/default/services", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		respondJSON(w, `{"kind":"Service","metadata":{"name":%q,"resourceVersion":"1"}}`, received.Name())
	}).Methods("POST")

	services, _ := newTestClient(t, server).Resource("service")
	doc, err := services.Create(context.Background(), kubeapi.Document{
		"kind":     "Service",
		"metadata": map[string]interface{}{"name": "helloworld"},
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, "helloworld", received.Name())
	assert.Equal(t, "1", doc.ResourceVersion())
}

func TestApplyPutsToResourcePath(t *testing.T) {
	router, server := fakeAPIServer()
	defer server.Close()
	var putPath string
	router.HandleFunc("/api/v1/namespaces/default/services/{name}", func(w http.ResponseWriter, r *http.Request) {
		putPath = r.URL.Path
		respondJSON(w, `{"kind":"Service","metadata":{"name":%q}}`, mux.Vars(r)["name"])
	}).Methods("PUT")

	services, _ := newTestClient(t, server).Resource("service")
	_, err := services.Apply(context.Background(), kubeapi.Document{
		"kind":     "Service",
		"metadata": map[string]interface{}{"name": "helloworld"},
	}, "")
	assert.NoError(t, err)
	assert.Equal(t, "/api/v1/namespaces/default/services/helloworld", putPath)
}

func TestApplyRequiresName(t *testing.T) {
	router, server := fakeAPIServer()
	defer server.Close()
	hits := 0
	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ })

	services, _ := newTestClient(t, server).Resource("service")
	_, err := services.Apply(context.Background(), kubeapi.Document{"kind": "Service"}, "")
	assert.Error(t, err)
	assert.True(t, kubeapi.IsConfig(err))
	assert.Equal(t, 0, hits)
}

func TestDelete(t *testing.T) {
	router, server := fakeAPIServer()
	defer server.Close()
	deleted := false
	router.HandleFunc("/api/v1/namespaces/default/configmaps/settings", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		respondJSON(w, `{"kind":"Status","status":"Success"}`)
	}).Methods("DELETE")

	configmaps, _ := newTestClient(t, server).Resource("configmap")
	outcome, err := configmaps.Delete(context.Background(), "settings", "")
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, http.StatusOK, outcome.StatusCode)
	assert.Equal(t, "Success", outcome.Body.StringAt("status"))
}

func TestExists(t *testing.T) {
	router, server := fakeAPIServer()
	defer server.Close()
	router.HandleFunc("/api/v1/namespaces/default/secrets/present", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, `{"kind":"Secret","metadata":{"name":"present"}}`)
	}).Methods("GET")

	secrets, _ := newTestClient(t, server).Resource("secret")

	present, err := secrets.Exists(context.Background(), "present", "")
	assert.NoError(t, err)
	assert.True(t, present)

	// A 404 is an answer, not an error.
	present, err = secrets.Exists(context.Background(), "absent", "")
	assert.NoError(t, err)
	assert.False(t, present)
}
