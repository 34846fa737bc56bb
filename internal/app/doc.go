// Package app contains the core application logic: the App struct, its
// configuration, and the scan lifecycle (discover, parse, project, emit),
// decoupled from any specific entrypoint like the CLI.
package app
