package index

import (
	"go.scnd.dev/open/derive"
	"go.scnd.dev/open/derive/command/derive/common/config"
	"go.scnd.dev/open/derive/package/expand"
)

type App interface {
	Verbose() *bool
	Directory() *string
	Config() *config.Config
	Derive() derive.Derive
	Expander() *expand.Expander
}
