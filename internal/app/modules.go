package app

import (
	"github.com/vk/sysglance/internal/registry"
	"github.com/vk/sysglance/modules/cpu"
	"github.com/vk/sysglance/modules/disk"
	"github.com/vk/sysglance/modules/httpprobe"
	"github.com/vk/sysglance/modules/loadavg"
	"github.com/vk/sysglance/modules/memory"
	"github.com/vk/sysglance/modules/uptime"
)

// coreModules is the definitive list of all metric modules that are
// compiled into the sysglance binary. Registration runs in this order
// during App construction; there is no init()-time registration anywhere.
var coreModules = []registry.Module{
	&cpu.Module{},
	&memory.Module{},
	&loadavg.Module{},
	&uptime.Module{},
	&disk.Module{},
	&httpprobe.Module{},
}
