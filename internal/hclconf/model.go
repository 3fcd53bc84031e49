package hclconf

import (
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/sysglance/internal/source"
)

// Model is the bound layout: every row holds a constructed data source,
// ready to be queried each render cycle.
type Model struct {
	Interval time.Duration
	Panels   []Panel
}

// Panel is a titled group of rows.
type Panel struct {
	Title string
	Rows  []Row
}

// Row pairs a label with the source it displays. When Format is non-empty
// the renderer applies it to the numeric reading; otherwise it shows the
// source's own text.
type Row struct {
	Label  string
	Source source.Source
	Format string
}

// fileSchema is the raw HCL shape of a layout file. Row values stay as
// expressions so they can be evaluated against the exported constructors
// after decoding.
type fileSchema struct {
	Monitor monitorSchema `hcl:"monitor,block"`
}

type monitorSchema struct {
	Interval string        `hcl:"interval,optional"`
	Panels   []panelSchema `hcl:"panel,block"`
}

type panelSchema struct {
	Title string      `hcl:"title,label"`
	Rows  []rowSchema `hcl:"row,block"`
}

type rowSchema struct {
	Label  string         `hcl:"label,label"`
	Value  hcl.Expression `hcl:"value"`
	Format string         `hcl:"format,optional"`
}
