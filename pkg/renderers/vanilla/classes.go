package vanilla

// ChromeClass is a semantic CSS class emitted around the controls.
type ChromeClass string

const (
	ClassForm    ChromeClass = "formwidget-form"
	ClassField   ChromeClass = "formwidget-field"
	ClassInvalid ChromeClass = "formwidget-field--invalid"
	ClassError   ChromeClass = "formwidget-error"
	ClassActions ChromeClass = "formwidget-actions"
)
