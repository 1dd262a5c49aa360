// Package validator provides a small composable rule engine for field
// validation. A Rule pairs a check closure with the error to report when
// the check fails; Apply runs rules in order and accumulates every failure
// instead of stopping at the first one.
package validator
