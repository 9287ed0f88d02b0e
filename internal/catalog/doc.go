// Package catalog holds the compatibility data model: developer interfaces,
// AI clients, features and transports, the changelog, and the derived
// combination keys that join them.
//
// Everything in this package is read-only once decoded. Support strings
// from the JSON "stats" maps are parsed into [Support] values at decode
// time, and combination keys are kept as [ComboKey] structs internally;
// the packed "<ide>+<client>" form only exists at the JSON boundary.
package catalog
