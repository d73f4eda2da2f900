// Package contract holds the Traffic Ops API contract suite.
//
// Connection flags are passed to the test binary after "--":
//
//	go test ./test/contract -args -- --to-url=https://to.example.test --to-user=admin --to-password=secret
//
// When no URL flag is given and the configuration file does not exist, the
// suite runs against an in-process fake Traffic Ops over TLS.
package contract
