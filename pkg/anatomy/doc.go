// Package anatomy assembles endocardial, epicardial and myocardial fields
// for a two-surface anatomical shell from a named parameter set.
package anatomy
