// Package http implements the HTTP transport layer of the user directory.
//
// Router-level middleware prepares every request (trace id, CORS, rate
// limiting, compression). Each route handler is then wrapped by the request
// pipeline: an error-guard stage that turns failures into a uniform 500
// response, and an access-log stage that records completed requests.
package http
