// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (read the input, animate
// it, write the model) decoupled from any specific entrypoint like a CLI.
package app
