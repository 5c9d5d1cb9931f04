// Package server exposes a council over HTTP.
//
// Routes:
//
//	POST /council/discuss            run a discussion, 200 with every round
//	GET  /council/members            chairman and member names
//	GET  /council/discussions/{id}   a recently finished discussion
//	GET  /healthz                    liveness
//
// Every response carries permissive CORS headers; preflight requests are
// answered with 204. Errors, including 405 for an unsupported method on a
// known route, are JSON objects of the form {"error": "...", "code": "..."}.
package server
