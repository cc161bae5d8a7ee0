package builder

import (
	"github.com/modrig/modrig/internal/catalog"
	"github.com/modrig/modrig/internal/moduleid"
)

// Namespace prefixes every built-in module name. Entry points are exported
// under this organization namespace to keep them distinct from user modules.
const Namespace = "org_apache_mesos"

// ModuleSpec describes a single entry point inside a library: which
// identifier it registers under, the exported symbol name, and the load-time
// parameters it is fed, if any. Params receives the build layout so values
// can reference build-tree paths.
type ModuleSpec struct {
	ID         moduleid.ID
	EntryPoint string
	Params     func(Layout) []catalog.Parameter
}

// LibrarySpec describes one shared library by its logical name. The logical
// name is platform-free; the assembler expands it to a file name and anchors
// it in the build tree.
type LibrarySpec struct {
	Name    string
	Modules []ModuleSpec
}

// Category groups the libraries that exercise one plugin interface.
type Category struct {
	Name      string
	Libraries []LibrarySpec
}

// categories is the assembly table. Order is part of the contract: catalogs
// list libraries in this order, and the tests pin it. Most categories ship a
// single library with a single entry point; isolation and authentication
// pack two entry points into one library, and the container logger category
// carries a second, parameterized library.
var categories = []Category{
	{
		Name: "isolator",
		Libraries: []LibrarySpec{{
			Name: "testisolator",
			Modules: []ModuleSpec{
				{ID: moduleid.TestCPUIsolator, EntryPoint: "TestCpuIsolator"},
				{ID: moduleid.TestMemIsolator, EntryPoint: "TestMemIsolator"},
			},
		}},
	},
	{
		Name: "authentication",
		Libraries: []LibrarySpec{{
			Name: "testauthentication",
			Modules: []ModuleSpec{
				{ID: moduleid.TestCRAMMD5Authenticatee, EntryPoint: "TestCRAMMD5Authenticatee"},
				{ID: moduleid.TestCRAMMD5Authenticator, EntryPoint: "TestCRAMMD5Authenticator"},
			},
		}},
	},
	{
		Name: "container-logger",
		Libraries: []LibrarySpec{
			{
				Name: "testcontainer_logger",
				Modules: []ModuleSpec{
					{ID: moduleid.TestSandboxContainerLogger, EntryPoint: "TestSandboxContainerLogger"},
				},
			},
			{
				Name: "logrotate_container_logger",
				Modules: []ModuleSpec{
					{
						ID:         moduleid.LogrotateContainerLogger,
						EntryPoint: "LogrotateContainerLogger",
						Params:     logrotateParams,
					},
				},
			},
		},
	},
	{
		Name: "hook",
		Libraries: []LibrarySpec{{
			Name: "testhook",
			Modules: []ModuleSpec{
				{ID: moduleid.TestHook, EntryPoint: "TestHook"},
			},
		}},
	},
	{
		Name: "anonymous",
		Libraries: []LibrarySpec{{
			Name: "testanonymous",
			Modules: []ModuleSpec{
				{ID: moduleid.TestAnonymous, EntryPoint: "TestAnonymous"},
			},
		}},
	},
	{
		Name: "allocator",
		Libraries: []LibrarySpec{{
			Name: "testallocator",
			Modules: []ModuleSpec{
				{ID: moduleid.TestDRFAllocator, EntryPoint: "TestDRFAllocator"},
			},
		}},
	},
	{
		Name: "resource-estimator",
		Libraries: []LibrarySpec{{
			Name: "testresource_estimator",
			Modules: []ModuleSpec{
				{ID: moduleid.TestNoopResourceEstimator, EntryPoint: "TestNoopResourceEstimator"},
			},
		}},
	},
	{
		Name: "authorizer",
		Libraries: []LibrarySpec{{
			Name: "testauthorizer",
			Modules: []ModuleSpec{
				{ID: moduleid.TestLocalAuthorizer, EntryPoint: "TestLocalAuthorizer"},
			},
		}},
	},
	{
		Name: "http-authenticator",
		Libraries: []LibrarySpec{{
			Name: "testhttpauthenticator",
			Modules: []ModuleSpec{
				{ID: moduleid.TestHTTPBasicAuthenticator, EntryPoint: "TestHttpBasicAuthenticator"},
			},
		}},
	},
	{
		Name: "fetcher-plugin",
		Libraries: []LibrarySpec{{
			Name: "testfetcher_plugin",
			Modules: []ModuleSpec{
				{ID: moduleid.TestCurlFetcherPlugin, EntryPoint: "TestCurlFetcherPlugin"},
			},
		}},
	},
}

// Categories returns the assembly table. Callers must treat the result as
// read-only; it is shared state backing every Assembler.
func Categories() []Category {
	return categories
}

// logrotateParams configures the logrotate container logger the way the
// test harness runs it: the launcher binary is looked up in the build tree,
// stdout rotates at 2MB, and logrotate keeps four rotations.
func logrotateParams(layout Layout) []catalog.Parameter {
	return []catalog.Parameter{
		{Key: "launcher_dir", Value: layout.LauncherDir()},
		{Key: "max_stdout_size", Value: Megabytes(2).String()},
		{Key: "logrotate_stdout_options", Value: "rotate 4"},
	}
}
