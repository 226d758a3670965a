// Package manifest parses and validates the template catalog manifest: the
// YAML document that lists every directory and file a generated project
// contains, in creation order. Manifests are checked against an embedded
// JSON Schema and then for ordering rules the schema cannot express.
package manifest
