// Package cli defines the ganttlog command tree.
package cli

import (
	"github.com/ganttlabs/ganttlog/internal/config"
	"github.com/ganttlabs/ganttlog/internal/storage"
)

// Context carries the shared dependencies into every command's Run.
type Context struct {
	Config *config.Config
	Store  storage.Provider
}
