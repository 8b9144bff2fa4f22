package app

import (
	"github.com/vk/transmute/internal/action"
	"github.com/vk/transmute/modules/minify"
	"github.com/vk/transmute/modules/unzip"
)

// coreModules lists the built-in action modules registered by default.
var coreModules = []action.Module{
	&unzip.Module{},
	&minify.Module{},
}
