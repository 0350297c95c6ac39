// Package dispatch is the outbound request layer of the client. Every API
// call goes through the http.Client built by NewHTTPClient, whose transport
// chain attaches the stored bearer credential and a request id.
//
// The transports never retry, never read response bodies and never react to
// status codes; transport errors reach the caller unchanged.
package dispatch
