// Package seo implements RankPilot's AI-backed SEO tools: keyword research,
// content briefs, competitor analysis and on-page audits.
//
// Each flow validates its input, renders a system and a user prompt from the
// embedded templates, and asks a generation.Generator for an object matching
// the flow's Schema. The Generator decides which provider answers; flows only
// see a validated result or an error.
package seo
