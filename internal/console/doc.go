// Package console is the interactive terminal front end of the admin
// console. It renders the navigation shell, the dashboard, one list page
// per entity and the read-only settings page, and routes key and mouse
// input to the page or to an open modal.
//
// The console is single-threaded: every transition runs synchronously
// inside the bubbletea update loop.
package console
