/*
Package modcfg loads caller-supplied module catalogs from declarative
manifests.

Operators hand extra modules to the tool two ways: an inline value on the
modules flag, or files in a modules directory. Manifests come in three
formats selected by file extension. HCL is the native form:

	library {
	  file = "/opt/plugins/libcustom.so"

	  module "org_example_Custom" {
	    parameters = {
	      flag = "value"
	    }
	  }
	}

JSON and YAML files carry the catalog wire shape directly. The flag value
may also be inline JSON, recognized by a leading brace.

Loading is structural only: a manifest that names no file, or a module with
no name, is rejected, but nothing here checks that library files exist on
disk. That is the module loader's problem at load time.
*/
package modcfg
