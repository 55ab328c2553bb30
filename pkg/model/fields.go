package model

import internalmodel "github.com/goliatone/go-formwidget/internal/model"

const SubmitLabel = internalmodel.SubmitLabel

type Field = internalmodel.Field
type Option = internalmodel.Option

// Fields returns the presentation contract for every form key in render order.
func Fields() []Field {
	return internalmodel.Fields()
}

// Lookup returns the descriptor for name.
func Lookup(name FieldName) (Field, bool) {
	return internalmodel.Lookup(name)
}

// ValidOption reports whether value is an accepted gender choice.
func ValidOption(value string) bool {
	return internalmodel.ValidOption(value)
}
