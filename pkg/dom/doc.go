// Package dom exposes the transient page model the behaviors attach to:
// elements identified by stable ids (message banners, editable controls,
// error displays) held in an insertion-ordered document. The document carries
// the two event surfaces the library relies on, the one-shot page-ready
// signal and per-element input listeners, and guarantees that operations on
// missing elements degrade to no-ops instead of failing. Implementations live
// in internal/dom and are re-exported here.
package dom
