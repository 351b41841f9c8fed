// Package autoload initializes the global logger from environment
// configuration as a side effect of being imported.
package autoload

import (
	configx "github.com/promotor-ai/promotor/pkg/config"
	logx "github.com/promotor-ai/promotor/pkg/logger"
)

func init() {
	cfg := configx.MustNew[logx.Config]("LOG")
	logx.Init(*cfg)
}
