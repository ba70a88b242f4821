package template

import (
	_ "embed"
)

//go:embed structure/derive.yml
var StructureConfig []byte
