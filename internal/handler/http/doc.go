// Package http implements the HTTP surface of the forum bridge.
//
// It exposes the SSO entry points used by browsers, the signed lifecycle
// hooks called by the host application, and the version and metrics
// endpoints. Tracing, access logging, request metrics, local session
// authentication and hook signature checks are handled here before
// requests are delegated to the service layer.
package http
