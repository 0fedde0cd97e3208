// Package hcl provides the HCL implementation of config.Loader. It parses a
// single settings file and binds it onto the config model through gohcl and
// go-cty.
package hcl
