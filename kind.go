package kubeapi

// Namespace handling for operations: an empty namespace argument means
// the "default" namespace, and NoNamespace suppresses namespace scoping
// for that call. Cluster-scoped kinds ignore the argument entirely.
const (
	DefaultNamespace = "default"
	NoNamespace      = "-"
)

// Descriptor declares how one kind of resource is addressed on the API
// server: the group/version prefix it is served under, its collection
// name, and its scoping and capability flags. Descriptors are static
// configuration, defined once at startup and never mutated.
type Descriptor struct {
	Kind       string
	APIPrefix  string
	Resource   string
	Namespaced bool
	ReadOnly   bool
	Listable   bool
}

// Validate checks the invariants every descriptor must satisfy.
func (d Descriptor) Validate() error {
	if d.APIPrefix == "" || d.Resource == "" {
		return ConfigErrorf("descriptor for kind %q needs both an API prefix and a resource name", d.Kind)
	}
	return nil
}

// Path constructs the URL path for the collection (empty name) or for a
// single resource. The namespace here is literal: empty means no
// namespace segment. Segments are not escaped or normalised; they
// appear in the path exactly as given, in the order the server expects:
//
//	{apiPrefix}[/namespaces/{namespace}]/{resource}[/{name}]
func (d Descriptor) Path(namespace, name string) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	p := d.APIPrefix
	if namespace != "" {
		p += "/namespaces/" + namespace
	}
	p += "/" + d.Resource
	if name != "" {
		p += "/" + name
	}
	return p, nil
}

// Descriptors returns the table of supported kinds. This table is the
// API surface contract; adding a kind here is all that is needed for
// the client to grow a full set of operations for it.
func Descriptors() []Descriptor {
	return []Descriptor{
		{Kind: "configmap", APIPrefix: "/api/v1", Resource: "configmaps", Namespaced: true, Listable: true},
		{Kind: "daemonset", APIPrefix: "/apis/extensions/v1beta1", Resource: "daemonsets", Namespaced: true, Listable: true},
		{Kind: "deployment", APIPrefix: "/apis/extensions/v1beta1", Resource: "deployments", Namespaced: true, Listable: true},
		{Kind: "node", APIPrefix: "/api/v1", Resource: "nodes", Listable: true},
		{Kind: "persistentvolume", APIPrefix: "/api/v1", Resource: "persistentvolumes", Listable: true},
		{Kind: "persistentvolumeclaim", APIPrefix: "/api/v1", Resource: "persistentvolumeclaims", Namespaced: true, Listable: true},
		{Kind: "petset", APIPrefix: "/apis/apps/v1alpha1", Resource: "petsets", Namespaced: true, Listable: true},
		{Kind: "pod", APIPrefix: "/api/v1", Resource: "pods", Namespaced: true, Listable: true},
		{Kind: "secret", APIPrefix: "/api/v1", Resource: "secrets", Namespaced: true, Listable: true},
		{Kind: "service", APIPrefix: "/api/v1", Resource: "services", Namespaced: true, Listable: true},
	}
}
