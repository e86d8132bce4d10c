// Package server exposes inspections and chat sessions over HTTP.
//
// Routes:
//
//	GET    /healthz
//	GET    /api/inspect?url=https://github.com/owner/repo
//	POST   /api/chat/sessions                 {"result": {...}} -> {"id": "..."}
//	GET    /api/chat/sessions/{id}/messages   -> {"id": "...", "messages": [...]}
//	POST   /api/chat/sessions/{id}/messages   {"message": "..."} -> {"reply": "..."}
//	DELETE /api/chat/sessions/{id}
//	GET    /metrics                           (when built WithMetrics)
//
// Failures return {"code": "...", "message": "..."} with the status from
// errors.HTTPStatus: 400 INVALID_INPUT, 422 PARSE_ERROR and
// UNSUPPORTED_FORMAT, 502 LOOKUP_FAILURE, 404 NOT_FOUND.
package server
