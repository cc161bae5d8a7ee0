package moduleid

import "fmt"

// ID identifies one loadable module entry point. An ID is unique for the
// lifetime of the process and is never reused for two different entry points.
type ID int

// The built-in test modules, in catalog assembly order. All but the
// logrotate container logger are test doubles; the logrotate logger is the
// real module, loaded into the test harness with test parameters.
const (
	TestCPUIsolator ID = iota
	TestMemIsolator
	TestCRAMMD5Authenticatee
	TestCRAMMD5Authenticator
	TestSandboxContainerLogger
	LogrotateContainerLogger
	TestHook
	TestAnonymous
	TestDRFAllocator
	TestNoopResourceEstimator
	TestLocalAuthorizer
	TestHTTPBasicAuthenticator
	TestCurlFetcherPlugin
)

// names is indexed by ID; keep it in sync with the constant block above.
var names = [...]string{
	TestCPUIsolator:            "TestCPUIsolator",
	TestMemIsolator:            "TestMemIsolator",
	TestCRAMMD5Authenticatee:   "TestCRAMMD5Authenticatee",
	TestCRAMMD5Authenticator:   "TestCRAMMD5Authenticator",
	TestSandboxContainerLogger: "TestSandboxContainerLogger",
	LogrotateContainerLogger:   "LogrotateContainerLogger",
	TestHook:                   "TestHook",
	TestAnonymous:              "TestAnonymous",
	TestDRFAllocator:           "TestDRFAllocator",
	TestNoopResourceEstimator:  "TestNoopResourceEstimator",
	TestLocalAuthorizer:        "TestLocalAuthorizer",
	TestHTTPBasicAuthenticator: "TestHTTPBasicAuthenticator",
	TestCurlFetcherPlugin:      "TestCurlFetcherPlugin",
}

// String returns the identifier's constant name. Values outside the declared
// set render in a numeric form so they stay recognizable in error messages.
func (id ID) String() string {
	if id < 0 || int(id) >= len(names) {
		return fmt.Sprintf("moduleid.ID(%d)", int(id))
	}
	return names[id]
}

// All returns every declared identifier in declaration order.
func All() []ID {
	ids := make([]ID, len(names))
	for i := range names {
		ids[i] = ID(i)
	}
	return ids
}
