// Package ui holds the presentational atoms of the admin console: Text,
// Button, Modal, Icon, Logo and Badge. Atoms are pure renderers from a
// props struct and a Theme to a terminal string. Every enumeration is a
// typed string; values outside the declared set render with a neutral
// style instead of failing.
package ui
