// Package matrix derives the view models rendered by the site: the
// combination list, the plugin-availability matrix, the feature-support
// matrix grouped by developer interface, the evidence details behind each
// cell, and the sorted changelog.
//
// Everything here is a pure function of a *catalog.State. Nothing is
// cached; callers rebuild whenever the state is reloaded.
package matrix
