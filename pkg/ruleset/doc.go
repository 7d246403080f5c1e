// Package ruleset loads rule configurations and form data from YAML.
//
// A rule file maps field names to rules under a top-level "fields" key:
//
//	fields:
//	  name:
//	    - validator: required
//	      msg: name is required
//	    - validator: "min:2 max:20"
//	  code:
//	    pattern: "^[A-Z]{3}$"
//	    msg: three capitals
//	  email: email
//
// Each rule sets exactly one of "validator" (a rule name, the required
// keyword or a length spec) or "pattern" (a regular expression). A field may
// hold a list of rules, a single rule mapping, or a bare rule name.
//
// Data files are flat YAML (or JSON) mappings. LoadData keeps the key order of
// the document, which is the order whole-form checks report fields in.
package ruleset
