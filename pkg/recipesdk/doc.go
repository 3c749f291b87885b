// Package recipesdk defines the request, response and error shapes of the
// Forkful recipe API, plus a typed client (SDKClient and the authenticated
// Session) built on them. Both the HTTP handlers and API consumers (including
// the e2e tests) share these types so the wire contract lives in one place.
package recipesdk
