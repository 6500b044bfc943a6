// Package steps holds the godog step definitions of the HTTP integration suite.
package steps
