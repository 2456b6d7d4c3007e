// Package openai provides the fallback generation.Provider, backed by the
// OpenAI chat completions API.
//
// OpenAI has no equivalent of Gemini's native response schema in the mode
// used here, so the Generator embeds the caller's JSON Schema in the system
// prompt, requests a JSON object response, and then parses and validates the
// raw text against the same generation.Schema the primary provider uses.
package openai
