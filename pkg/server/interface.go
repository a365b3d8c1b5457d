/*
Package server implements msgpack IPC for spell checking services.

The server reads a stream of msgpack encoded requests from stdin and writes
one msgpack response per request to stdout. Requests are processed
synchronously, in order, and carry timing info in microseconds.

# IPC

Every request is a map with an ID and an action:

	{"id": "req_001", "action": "check", "w": ["hello", "wrld"], "l": 5}

Raw text can be sent instead of tokens and is tokenized server side:

	{"id": "req_002", "action": "check", "x": "Hello, wrld!"}

The response lists misspellings with context and suggestions:

	{"id": "req_001", "m": [{"w": "wrld", "c": "hello wrld", "s": ["world"]}], "c": 1, "t": 42}

Other actions:

	{"id": "q", "action": "contains", "p": "hello"}     -> {"id": "q", "w": "hello", "ok": true}
	{"id": "q", "action": "complete", "p": "wor", "l": 3} -> {"id": "q", "s": [{"w": "world", "r": 1}], "c": 1, "t": 7}
	{"id": "q", "action": "info"}                        -> {"id": "q", "status": "ok", "words": 4, "distinct": 4}
	{"id": "q", "action": "health"}                      -> {"id": "q", "status": "ok"}

Invalid requests get {"id": ..., "e": "message", "c": 400} and the loop
continues. A broken stream ends the server.
*/
package server

import "github.com/bastiangx/wordcheck/pkg/checker"

// Request is the envelope for every action.
// Limit is a pointer so an absent limit can fall back to config.
type Request struct {
	ID     string   `msgpack:"id"`
	Action string   `msgpack:"action"`
	Words  []string `msgpack:"w,omitempty"`
	Text   string   `msgpack:"x,omitempty"`
	Prefix string   `msgpack:"p,omitempty"`
	Limit  *int     `msgpack:"l,omitempty"`
}

// CheckResponse - misspellings found in a batch
type CheckResponse struct {
	ID           string                   `msgpack:"id"`
	Misspellings []checker.MisspelledWord `msgpack:"m"`
	Count        int                      `msgpack:"c"`
	TimeTaken    int64                    `msgpack:"t"`
}

// ContainsResponse - exact membership result
type ContainsResponse struct {
	ID    string `msgpack:"id"`
	Word  string `msgpack:"w"`
	Found bool   `msgpack:"ok"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// InfoResponse - dictionary statistics
type InfoResponse struct {
	ID       string `msgpack:"id"`
	Status   string `msgpack:"status"`
	Words    int    `msgpack:"words"`
	Distinct int    `msgpack:"distinct"`
	Requests int    `msgpack:"requests"`
}

// StatusResponse - ready/health signal
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
