// Package cli provides the interactive portal command-line client.
//
// It wires configuration, the persisted session, the request pipeline, API
// services and an interactive REPL. The REPL mirrors the screens of the web
// portal: the login screen offers register/login/check, the home screen the
// profile commands. When the backend rejects the credential the pipeline
// logs the user out and the REPL falls back to the login screen.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, NewApp, and runREPL for details.
package cli
