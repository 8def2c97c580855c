// ABOUTME: Dependencies container provides dependency injection for the client
// ABOUTME: Defines the contract for dependencies required by the fdc service

package interfaces

// Dependencies holds all external dependencies required by the fdc client
type Dependencies struct {
	// Cache provides memoization of API results
	Cache Cache

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
