// Package config loads the YAML file that drives filterable-gen.
//
// Example:
//
//	version: "1"
//	tag: filter
//	unique_paths: true
//	packages:
//	  - path: ./examples/request
//	    types: Request
//	  - path: ./examples/firewall
//	    types: [Packet]
//
// A package without types generates every struct carrying at least one
// annotation.
package config
