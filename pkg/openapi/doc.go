// Package openapi describes the submission payload as an OpenAPI 3 document
// and checks incoming JSON against it. kin-openapi types stay inside this
// package; callers work with bytes and model.FormState.
package openapi
