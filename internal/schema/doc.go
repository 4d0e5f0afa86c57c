// Package schema declares the input constraints for each tool as data.
//
// A tool's input is described by an Object: a tree of Field constraints
// covering required and optional strings, closed enumerations, nested
// objects, and arrays. The same tree drives both validation of incoming
// arguments and the JSON Schema advertised during tool listing, so the
// two can never drift apart.
package schema
