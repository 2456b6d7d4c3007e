// Package api handles incoming HTTP requests, request validation and
// response formatting for the SEO tools. It acts as an adapter between
// external clients and the seo.Service, translating generation failures
// into status codes and messages that never expose provider details.
package api
