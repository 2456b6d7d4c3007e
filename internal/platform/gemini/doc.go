// Package gemini provides the primary generation.Provider, backed by
// Google's Gemini API.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the provider-agnostic generation core to Google's external
// Gemini service without exposing the SDK to the rest of the application.
//
// Key components:
//
// 1. Generator:
//   - Implements the generation.Provider interface
//   - Sends one GenerateContent call per request in JSON mode
//   - Validates the returned object against the caller's Schema
//
// 2. Schema translation:
//   - Converts a generation.Schema into the SDK's native response schema
//     so the model is constrained at decode time
//
// 3. Error translation:
//   - Converts genai.APIError values into generation.ProviderError so the
//     generation classifier can decide on fallback without knowing the SDK
//   - Reports safety blocks as generation.ErrContentBlocked
//
// The package does not retry. Fallback on transient failures is the
// responsibility of generation.Orchestrator.
package gemini
