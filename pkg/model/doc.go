// Package model defines the form widget's data model. FormState carries the
// four tracked fields (name, email, agreeTerms, gender) and always has all of
// them set, using empty strings and false as defaults. ErrorState is derived
// from FormState. It maps a field to its message only while that field fails
// validation, so an empty ErrorState means the form is valid. Field descriptors
// expose the placeholders and labels renderers use as accessible names.
package model
