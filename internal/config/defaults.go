package config

func intPtr(v int) *int { return &v }

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	return &Config{
		Columns: DefaultColumns(),
		Style: StyleConfig{
			Header: "BrightWhite|Black",
			Unit:   "BrightWhite|Black",
			Tree:   "BrightWhite|Black",
			ByPercentage: ByPercentageConfig{
				Color000: "BrightBlue|Blue",
				Color025: "BrightGreen|Green",
				Color050: "BrightYellow|Yellow",
				Color075: "BrightRed|Red",
				Color100: "BrightRed|Red",
			},
			ByState: ByStateConfig{
				ColorD: "BrightRed|Red",
				ColorR: "BrightGreen|Green",
				ColorS: "BrightBlue|Blue",
				ColorT: "BrightCyan|Cyan",
				ColorZ: "BrightMagenta|Magenta",
				ColorX: "BrightMagenta|Magenta",
				ColorK: "BrightYellow|Yellow",
				ColorW: "BrightYellow|Yellow",
				ColorP: "BrightYellow|Yellow",
			},
			ByUnit: ByUnitConfig{
				ColorK: "BrightBlue|Blue",
				ColorM: "BrightGreen|Green",
				ColorG: "BrightYellow|Yellow",
				ColorT: "BrightRed|Red",
				ColorP: "BrightRed|Red",
				ColorX: "BrightBlue|Blue",
			},
		},
		Search: SearchConfig{
			NumericSearch:    SearchExact,
			NonnumericSearch: SearchPartial,
			Logic:            LogicAnd,
			SmartCase:        true,
		},
		Display: DisplayConfig{
			ShowSelf:      false,
			CutToTerminal: true,
			CutToPager:    false,
			CutToPipe:     false,
			ColorMode:     ColorAuto,
			Theme:         ThemeAuto,
			Separator:     "│",
			Ascending:     "▲",
			Descending:    "▼",
			TreeSymbols:   []string{"│", "─", "┬", "├", "└"},
		},
		Sort: SortConfig{
			Column: 0,
			Order:  Ascending,
		},
		Pager: PagerConfig{
			Mode: PagerAuto,
		},
	}
}

// DefaultColumns is the column layout shipped with gprocs.
func DefaultColumns() []ColumnConfig {
	return []ColumnConfig{
		{Kind: KindPid, Style: "BrightYellow|Blue", Align: AlignRight, NumericSearch: true},
		{Kind: KindUsername, Style: "BrightGreen|Green", Align: AlignLeft, NonnumericSearch: true},
		{Kind: KindSeparator, Style: "White|BrightBlack", Align: AlignLeft},
		{Kind: KindState, Style: "ByState", Align: AlignLeft},
		{Kind: KindNice, Style: "BrightMagenta|Magenta", Align: AlignRight},
		{Kind: KindThreads, Style: "BrightWhite|Black", Align: AlignRight},
		{Kind: KindUsageCPU, Style: "ByPercentage", Align: AlignRight},
		{Kind: KindUsageMem, Style: "ByPercentage", Align: AlignRight},
		{Kind: KindVMRss, Style: "ByUnit", Align: AlignRight},
		{Kind: KindCPUTime, Style: "BrightCyan|Cyan", Align: AlignLeft},
		{Kind: KindSeparator, Style: "White|BrightBlack", Align: AlignLeft},
		{Kind: KindSlot, Style: "BrightWhite|Black", Align: AlignLeft},
		{Kind: KindSeparator, Style: "White|BrightBlack", Align: AlignLeft},
		{Kind: KindCommand, Style: "BrightWhite|Black", Align: AlignLeft, NonnumericSearch: true, MaxWidth: intPtr(120)},
	}
}
