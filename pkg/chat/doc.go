// Package chat implements the assistant that answers follow-up questions
// about an inspection result.
//
// Messages that mention "dependencies" or "vulnerabilities" are seeded with
// the matching part of the result before being sent (see [BuildPrompt]).
// A [Session] keeps the conversation history and sends all of it with each
// message; a [Store] holds sessions for the HTTP API.
package chat
