/*
Package rules provides declarative migration transformations.

Rules are declared in a YAML document. Every rule selects a value from the
migration payload using a JSONPath expression and optionally normalizes it:

	migration_flag: migration_info
	serialize: false
	transformations:
	  email:
	    path: $.teamAdminEmail
	    case: lower
	    trim: true
	  team_id:
	    path: $.teamId
	    missing: fail
	  tags:
	    path: "$.tags[*]"
	    join: ","

A path matching a single node produces that node value. A path matching
several nodes produces a list, unless join is set in which case the nodes are
joined into a single string.

When nothing matches (or only null values match) the default value is used if
declared. Otherwise the missing policy decides: "pass" (the default) leaves the
parameter unchanged, "fail" fails the parameter and "abort" aborts the whole
migration.
*/
package rules
