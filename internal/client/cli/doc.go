// Package cli is the interactive terminal front-end of the Blogify auth
// client.
//
// App renders the auth screen that the flow controller has active as a
// prompt ("blogify /login> ") with its own set of commands, prints toasts
// as "[ok] ..." and "[error] ...", and switches to the home area after a
// successful sign-in. Each mode change discards the previous screen and
// builds a fresh one, so forms never leak between visits.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
