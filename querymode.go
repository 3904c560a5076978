// Package querymode lets users explore LLM-integrated web search from
// the command line: a conversational mode powered by grounded Gemini
// generation with inline source citations, a traditional mode backed by
// SERP API organic results, and Google News headline sampling for
// search inspiration.
//
// This package contains domain types, interfaces, and pure functions
// following Ben Johnson's Standard Package Layout. Implementations live
// in subdirectories named after their primary dependency (e.g. gemini/,
// serpapi/, sqlite/).
package querymode
