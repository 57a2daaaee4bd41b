// Package types defines the entity types, fixed catalogs, sentinel errors,
// and storage configuration for the washlog state store.
package types
