// Package pagesmcp exposes GitHub Pages management as Model Context
// Protocol tools.
//
// The server registers five tools — enable, inspect, deploy, disable, and
// update — each declared with a structural input schema. Incoming calls are
// validated against the schema before any GitHub API call is made, and
// every tool returns a uniform JSON envelope: a success payload, or an
// error message with optional upstream diagnostics.
//
// Construct a server around a gh.Client and serve it on stdio:
//
//	client := gh.NewTokenClient(os.Getenv("GITHUB_TOKEN"))
//	server := pagesmcp.New(client, pagesmcp.WithLogger(logger))
//	if err := server.RunStdio(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// The server holds no state between invocations; two concurrent deploys to
// the same branch race at the reference update exactly as they would
// against the GitHub API directly.
package pagesmcp
