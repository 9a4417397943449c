// Package screens holds the headless controllers of the auth screens:
// form state, local validation, the backend call and what happens after it.
// Rendering is left to the caller (see package cli).
package screens
