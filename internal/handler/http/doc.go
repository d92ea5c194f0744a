// Package http implements the HTML transport layer of the application.
//
// It serves the sign-up, sign-in, home and sign-out pages, renders them from
// embedded html/template files, and keeps the signed-in username in a
// session cookie through a [SessionManager]. Request tracing and access
// logging are handled here before requests are delegated to the service
// layer.
package http
