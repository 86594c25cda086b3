// Package autoload initializes the global logger from the LOG_*
// environment on import. Import for side effects from main only.
package autoload

import (
	configx "github.com/solacechat/solace/pkg/config"
	logx "github.com/solacechat/solace/pkg/logger"
)

func init() {
	cfg := configx.MustNew[logx.Config]("LOG")
	logx.Init(*cfg)
}
