// Package registry provides the mapping from module identifiers to the
// display names the dynamic loader looks modules up under.
//
// The catalog builder registers every identifier/name pair as it appends
// module records, so after one assembly pass the Registry can answer "what
// name was the test CPU isolator registered under?" without consulting the
// catalog itself. Lookups never trigger assembly or loading.
//
// The Registry is deliberately a plain owned object rather than package
// state: each test harness constructs its own, which keeps runs isolated
// and lets them observe the unregistered case.
package registry
