// Package router provides a client for the web admin interface of Huawei LTE routers.
//
// Every call is a single HTTP round trip through Transport; nothing is retried or cached.
// On top of it the client decodes XML API responses into an xmltree.Node and
// extracts the csrf_token values the router embeds in /html/home.html, which
// must accompany every state-changing API request.
//
// Failures are reported as *RequestError values whose Kind is one of
// "http_request_error", "http_request_invalid_status" or "http_request_invalid_xml".
package router
