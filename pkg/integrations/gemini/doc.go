// Package gemini provides a minimal client for the Gemini generateContent API.
//
// Requests are POST {base}/{model}:generateContent with the key in the
// x-goog-api-key header and a body of
//
//	{"contents": [{"role": "user", "parts": [{"text": "..."}]}]}
//
// The reply is candidates[0].content.parts[0].text. A reply without text is
// reported as [ErrNoContent] so callers can substitute a fallback message.
package gemini
