// Package schemas holds the JSON Schema documents for the service's data files.
package schemas

import _ "embed"

// RoleCatalogFile is the file name of the role catalog schema.
const RoleCatalogFile = "role_catalog.schema.json"

// RoleCatalog is the JSON Schema for role catalog data files.
//
//go:embed role_catalog.schema.json
var RoleCatalog []byte
