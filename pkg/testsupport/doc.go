// Package testsupport renders a widget to HTML and drives it the way a user
// would: queries by placeholder, role and accessible name, or visible text,
// and actions (typing, clearing, clicking) that dispatch change events and
// re-render. It is used by the package tests across the module.
package testsupport
