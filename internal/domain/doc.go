// Package domain contains shared domain types used across the content sub-packages.
// Content types live in sub-packages (domain/entity, domain/layout, domain/form,
// domain/group). This root package holds sentinel errors, validation types, and
// the staged-write interfaces (Action, WriteStager) used when a cloned node is
// finally persisted.
package domain
