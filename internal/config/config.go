// Package config holds the gprocs configuration schema, its defaults and the
// runtime overrides collected from the command line.
package config

// Theme selects one side of every {dark, light} colour pair.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// SortOrder is the direction of the active sort column.
type SortOrder string

const (
	Ascending  SortOrder = "ascending"
	Descending SortOrder = "descending"
)

// SearchLogic combines the per-class search results.
type SearchLogic string

const (
	LogicAnd  SearchLogic = "and"
	LogicOr   SearchLogic = "or"
	LogicNand SearchLogic = "nand"
	LogicNor  SearchLogic = "nor"
)

// SearchKind is how a keyword is matched against a column value.
type SearchKind string

const (
	SearchExact   SearchKind = "exact"
	SearchPartial SearchKind = "partial"
	SearchFuzzy   SearchKind = "fuzzy"
)

// PagerMode controls when output is piped through a pager.
type PagerMode string

const (
	PagerAuto    PagerMode = "auto"
	PagerAlways  PagerMode = "always"
	PagerDisable PagerMode = "disable"
)

// ColorMode controls when output is coloured.
type ColorMode string

const (
	ColorAuto    ColorMode = "auto"
	ColorAlways  ColorMode = "always"
	ColorDisable ColorMode = "disable"
)

// Align is the horizontal alignment of a column.
type Align string

const (
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
	AlignCenter Align = "center"
)

// ColumnKind names one kind of column.
type ColumnKind string

const (
	KindCommand   ColumnKind = "command"
	KindCPUTime   ColumnKind = "cpu_time"
	KindNice      ColumnKind = "nice"
	KindParentPid ColumnKind = "parent_pid"
	KindPid       ColumnKind = "pid"
	KindSeparator ColumnKind = "separator"
	KindSlot      ColumnKind = "slot"
	KindStartTime ColumnKind = "start_time"
	KindState     ColumnKind = "state"
	KindTCPPort   ColumnKind = "tcp_port"
	KindThreads   ColumnKind = "threads"
	KindTree      ColumnKind = "tree"
	KindUsageCPU  ColumnKind = "usage_cpu"
	KindUsageMem  ColumnKind = "usage_mem"
	KindUsername  ColumnKind = "username"
	KindVMRss     ColumnKind = "vm_rss"
	KindVMSize    ColumnKind = "vm_size"
)

// Config is the whole configuration file.
type Config struct {
	Columns []ColumnConfig `toml:"columns"`
	Style   StyleConfig    `toml:"style"`
	Search  SearchConfig   `toml:"search"`
	Display DisplayConfig  `toml:"display"`
	Sort    SortConfig     `toml:"sort"`
	Pager   PagerConfig    `toml:"pager"`
}

// ColumnConfig describes one configured column.
//
// Style is either a colour pair ("BrightRed|Red"), a single colour used for
// both themes, or one of "ByPercentage", "ByState", "ByUnit".
type ColumnConfig struct {
	Kind             ColumnKind `toml:"kind"`
	Header           string     `toml:"header"`
	Style            string     `toml:"style"`
	Align            Align      `toml:"align"`
	NonnumericSearch bool       `toml:"nonnumeric_search"`
	NumericSearch    bool       `toml:"numeric_search"`
	MaxWidth         *int       `toml:"max_width"`
	MinWidth         *int       `toml:"min_width"`
}

// StyleConfig holds the colour pairs used outside per-column fixed styles.
type StyleConfig struct {
	Header       string             `toml:"header"`
	Unit         string             `toml:"unit"`
	Tree         string             `toml:"tree"`
	ByPercentage ByPercentageConfig `toml:"by_percentage"`
	ByState      ByStateConfig      `toml:"by_state"`
	ByUnit       ByUnitConfig       `toml:"by_unit"`
}

type ByPercentageConfig struct {
	Color000 string `toml:"color_000"`
	Color025 string `toml:"color_025"`
	Color050 string `toml:"color_050"`
	Color075 string `toml:"color_075"`
	Color100 string `toml:"color_100"`
}

type ByStateConfig struct {
	ColorD string `toml:"color_d"`
	ColorR string `toml:"color_r"`
	ColorS string `toml:"color_s"`
	ColorT string `toml:"color_t"`
	ColorZ string `toml:"color_z"`
	ColorX string `toml:"color_x"`
	ColorK string `toml:"color_k"`
	ColorW string `toml:"color_w"`
	ColorP string `toml:"color_p"`
}

type ByUnitConfig struct {
	ColorK string `toml:"color_k"`
	ColorM string `toml:"color_m"`
	ColorG string `toml:"color_g"`
	ColorT string `toml:"color_t"`
	ColorP string `toml:"color_p"`
	ColorX string `toml:"color_x"`
}

type SearchConfig struct {
	NumericSearch    SearchKind  `toml:"numeric_search"`
	NonnumericSearch SearchKind  `toml:"nonnumeric_search"`
	Logic            SearchLogic `toml:"logic"`
	SmartCase        bool        `toml:"smart_case"`
}

type DisplayConfig struct {
	ShowSelf      bool      `toml:"show_self"`
	CutToTerminal bool      `toml:"cut_to_terminal"`
	CutToPager    bool      `toml:"cut_to_pager"`
	CutToPipe     bool      `toml:"cut_to_pipe"`
	ColorMode     ColorMode `toml:"color_mode"`
	Theme         Theme     `toml:"theme"`
	Separator     string    `toml:"separator"`
	Ascending     string    `toml:"ascending"`
	Descending    string    `toml:"descending"`
	// TreeSymbols are, in order: vertical, horizontal, branch-down, tee, corner.
	TreeSymbols []string `toml:"tree_symbols"`
}

type SortConfig struct {
	Column int       `toml:"column"`
	Order  SortOrder `toml:"order"`
}

type PagerConfig struct {
	Mode    PagerMode `toml:"mode"`
	Command string    `toml:"command"`
}
