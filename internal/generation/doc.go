// Package generation provides the provider-agnostic core for structured AI
// content generation. It defines the Schema contract that every generated
// object must satisfy, the Provider port implemented by infrastructure
// adapters (Gemini, OpenAI), the failure classifier that decides whether a
// primary provider error justifies a fallback, and the Orchestrator that ties
// them together.
//
// The Orchestrator runs a deliberately bounded two-attempt protocol: one call
// to the primary provider and, only when the primary failure is classified as
// transient (HTTP 503 or an "overloaded" signal), one call to the fallback
// provider. Callers only ever receive a Result that validated against the
// Schema, or an error.
package generation
