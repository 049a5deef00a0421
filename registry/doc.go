/*
Package registry manages resource registration and configuration for ContentStore.

The registry system enables:
  - Associating Go entry types with the resource they live under
  - Looking up resources dynamically by name (for CLI and config-driven use)
  - Loading resource descriptors from a YAML configuration

Type Registry:
Associates Go entry types with resource descriptors:

	registry.RegisterResource[Article](registry.ResourceDescriptor{
	    Name:        "articles",
	    UniqueField: "slug",
	})

Named Registry:
Descriptors addressable by resource name, typically populated from YAML:

	cfg, err := registry.LoadConfigFile("contentstore.yaml")
	if err != nil { ... }
	cfg.RegisterAll()

	desc, err := registry.LookupNamed("articles")

The registry is thread-safe and should be populated during initialization,
typically in init() functions or right after loading configuration.
*/
package registry
