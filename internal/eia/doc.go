// Package eia retrieves hourly grid records from the U.S. Energy Information
// Administration's v2 API (Form EIA-930, Hourly Electric Grid Monitor).
//
// The API caps responses at 5000 rows, so every route is read page by page
// until a short page is returned.
package eia
