package search

import "github.com/calyptra/pdfscan/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps while workers
// run, e.g. to drive a display layer. Callbacks other than Start and
// Finish are invoked from worker goroutines and must be safe for
// concurrent use.
type SearchMonitor interface {
	Start(cfg *core.Config)
	RootStarted(root string)
	FileMatched(match *core.FileMatch)
	FileSkipped(path string, err error)
	RootFinished(root string, matched int)
	Finish(results *core.ResultSet)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.Config)          {}
func (n *noopMonitor) RootStarted(_ string)          {}
func (n *noopMonitor) FileMatched(_ *core.FileMatch) {}
func (n *noopMonitor) FileSkipped(_ string, _ error) {}
func (n *noopMonitor) RootFinished(_ string, _ int)  {}
func (n *noopMonitor) Finish(_ *core.ResultSet)      {}
