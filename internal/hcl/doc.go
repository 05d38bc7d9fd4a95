// Package hcl provides the HCL implementation of config.Loader. It parses a
// case file, evaluates its expressions against a small evaluation context
// (case_dir, env and a few string/list functions) and translates the result
// into the format-agnostic config.Model.
package hcl
