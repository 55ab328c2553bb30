package model

import internalmodel "github.com/goliatone/go-formwidget/internal/model"

type FieldName = internalmodel.FieldName

const (
	NameField       = internalmodel.NameField
	EmailField      = internalmodel.EmailField
	AgreeTermsField = internalmodel.AgreeTermsField
	GenderField     = internalmodel.GenderField
)

// FieldOrder re-exports the render order of the form keys.
var FieldOrder = internalmodel.FieldOrder

const (
	GenderUnset  = internalmodel.GenderUnset
	GenderMale   = internalmodel.GenderMale
	GenderFemale = internalmodel.GenderFemale
)

type ControlKind = internalmodel.ControlKind

const (
	ControlText     = internalmodel.ControlText
	ControlEmail    = internalmodel.ControlEmail
	ControlCheckbox = internalmodel.ControlCheckbox
	ControlRadio    = internalmodel.ControlRadio
)

type FormState = internalmodel.FormState
type ErrorState = internalmodel.ErrorState
type InputEvent = internalmodel.InputEvent
type View = internalmodel.View

type Status = internalmodel.Status

const (
	StatusClean   = internalmodel.StatusClean
	StatusInvalid = internalmodel.StatusInvalid
)

// StatusOf derives the clean/invalid status for errs.
func StatusOf(errs ErrorState) Status {
	return internalmodel.StatusOf(errs)
}
