// Package core contains the business logic for the FoodData Central client.
// It is designed to be framework-agnostic and can be used independently
// of any transport or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (FoodEntry and its value types)
// - fdc: The API client service, response normalizer and status validator
// - config: Client configuration via functional options
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from transport concerns
//
// # Usage Example
//
//	import (
//	    "fooddata-api-client/core/fdc"
//	    "fooddata-api-client/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create client
//	client, err := fdc.NewClient(apiKey, deps)
//
//	// Look up a food record
//	entry, err := client.FoodByID(ctx, 173944, nil)
package core
