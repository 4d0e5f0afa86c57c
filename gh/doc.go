// Package gh defines the upstream GitHub surface the tool handlers consume.
//
// The Client interface covers the Pages settings endpoints and the git data
// API (refs, commits, blobs, trees). Handlers only see this interface; the
// production implementation, RESTClient, adapts it onto the go-github REST
// client and classifies upstream failures into APIError values.
package gh
