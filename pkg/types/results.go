package types

// RenderResult holds the outcome of rendering a set of blueprints and
// running the post script
type RenderResult struct {
	Rendered []string `json:"rendered"`
	Failed   []string `json:"failed"`
	// NotFound lists requested blueprints that matched no file
	NotFound   []string `json:"notFound,omitempty"`
	ScriptPath string   `json:"scriptPath,omitempty"`
	ScriptRan  bool     `json:"scriptRan"`
}

// LoadResult holds the result of the 'load' command
type LoadResult struct {
	Colorscheme string       `json:"colorscheme"`
	Path        string       `json:"path"`
	Saved       bool         `json:"saved"`
	Render      RenderResult `json:"render"`
}

// ReloadResult holds the result of the 'reload' command
type ReloadResult struct {
	Render RenderResult `json:"render"`
}

// ListResult holds the result of the 'list' command
type ListResult struct {
	Colorschemes []ColorschemeSummary `json:"colorschemes"`
}

// ColorschemeSummary describes one listed colorscheme
type ColorschemeSummary struct {
	Name                string  `json:"name"`
	Path                string  `json:"path"`
	Background          string  `json:"background"`
	Foreground          string  `json:"foreground"`
	BackgroundLuminance float64 `json:"backgroundLuminance"`
	Contrast            float64 `json:"contrast"`
	Dark                bool    `json:"dark"`
}

// GenConfigResult holds the result of the 'genconfig' command
type GenConfigResult struct {
	ConfigContent string   `json:"configContent"`
	FilesWritten  []string `json:"filesWritten"`
}
