// Package app wires settings, the EIA data source, the attribution engine and
// the report writer into a single run over a time window.
package app
