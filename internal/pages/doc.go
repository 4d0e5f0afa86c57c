// Package pages implements the tool operations for managing a repository's
// GitHub Pages site: enable, inspect, update, disable, and deploy.
//
// Each handler receives arguments that already passed schema validation,
// issues one or more upstream calls through a gh.Client, and returns a
// Result. Nothing escapes a handler as an error: upstream failures are
// caught and classified, and normal negative outcomes (Pages not enabled,
// empty deploy) stay on the success-shaped path with Success set to false.
package pages
