package config

// LayoutConfig is the root config for layouts/<name>.json.
// Rows use one glyph per tile: '.' grass, ':' sand, '~' water, 'T' tree, '^' mountain.
type LayoutConfig struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Rows []string `json:"rows"`
}
