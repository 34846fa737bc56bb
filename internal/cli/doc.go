// Package cli translates command-line arguments into an app.Config,
// keeping flag handling out of both main and the app itself.
package cli
