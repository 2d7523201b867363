// Package migrations holds the schema migrations. Each file registers itself
// with the migration registry from init(); importing this package for side
// effects (as cmd does) makes every migration available to the runner.
package migrations
