// Package session keeps the signed-in username in a client-held cookie.
//
// The cookie value is an HS256-signed JWT carrying the username claim. The
// server keeps no session state: a cookie that is missing, tampered with,
// expired, issued by someone else or signed with a different key simply
// means "not signed in". Every token expires; without a configured duration
// it lives for DefaultLifetime while the cookie itself ends with the browser.
package session
