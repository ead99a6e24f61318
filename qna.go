// Package qna answers natural-language coding questions from the command
// line. It searches the web for matching Stack Overflow discussions,
// extracts the question, answers and code snippets from each candidate
// page, and exposes them through a navigable, cached result session.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., google/, scan/, sqlite/).
package qna
