// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle — load options, compose
// the resource graph, encode it — decoupled from any specific entrypoint.
package app
