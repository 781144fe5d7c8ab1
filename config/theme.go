package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Theme holds complete color theme settings
// This is the format for theme TOML files in ~/.config/ked/themes/
type Theme struct {
	// Metadata
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Author      string `toml:"author"`

	// UI Colors
	UI UIColors `toml:"ui"`

	// Syntax highlighting colors
	Syntax SyntaxColors `toml:"syntax"`
}

// UIColors holds UI color settings
type UIColors struct {
	TabBg        string `toml:"tab_bg"`
	TabFg        string `toml:"tab_fg"`
	TabActiveFg  string `toml:"tab_active_fg"`
	StatusBg     string `toml:"status_bg"`
	StatusFg     string `toml:"status_fg"`
	StatusAccent string `toml:"status_accent"`
	InsertAccent string `toml:"insert_accent"`
	SelectionBg  string `toml:"selection_bg"`
	SelectionFg  string `toml:"selection_fg"`
	ErrorBg      string `toml:"error_bg"`
	ErrorFg      string `toml:"error_fg"`
}

// SyntaxColors holds syntax highlighting color settings
type SyntaxColors struct {
	Keyword  string `toml:"keyword"`
	String   string `toml:"string"`
	Comment  string `toml:"comment"`
	Number   string `toml:"number"`
	Operator string `toml:"operator"`
	Function string `toml:"function"`
	Type     string `toml:"type"`
}

// Built-in themes
var builtinThemes = map[string]Theme{
	"default": {
		Name:        "default",
		Description: "Plain terminal colors with an inverted selection",
		Author:      "ked",
		UI: UIColors{
			TabBg:        "0",  // Black
			TabFg:        "7",  // Light gray
			TabActiveFg:  "15", // Bright white
			StatusBg:     "7",  // Light gray
			StatusFg:     "0",  // Black
			StatusAccent: "4",  // Blue
			InsertAccent: "11", // Bright yellow
			SelectionBg:  "7",  // Light gray
			SelectionFg:  "0",  // Black
			ErrorBg:      "1",  // Red
			ErrorFg:      "15", // Bright white
		},
		Syntax: SyntaxColors{
			Keyword:  "14", // Bright cyan
			String:   "10", // Bright green
			Comment:  "8",  // Gray
			Number:   "11", // Bright yellow
			Operator: "13", // Bright magenta
			Function: "12", // Bright blue
			Type:     "11", // Bright yellow
		},
	},
	"dark": {
		Name:        "dark",
		Description: "Modern dark theme with muted colors",
		Author:      "ked",
		UI: UIColors{
			TabBg:        "236", // Dark gray
			TabFg:        "245", // Medium gray
			TabActiveFg:  "252", // Light gray
			StatusBg:     "236", // Dark gray
			StatusFg:     "252", // Light gray
			StatusAccent: "43",  // Teal
			InsertAccent: "215", // Orange
			SelectionBg:  "24",  // Dark cyan
			SelectionFg:  "15",  // Bright white
			ErrorBg:      "52",  // Dark red
			ErrorFg:      "203", // Soft red
		},
		Syntax: SyntaxColors{
			Keyword:  "176", // Purple
			String:   "114", // Green
			Comment:  "245", // Gray
			Number:   "215", // Orange
			Operator: "80",  // Cyan
			Function: "75",  // Light blue
			Type:     "222", // Yellow
		},
	},
	"light": {
		Name:        "light",
		Description: "Light theme for bright environments",
		Author:      "ked",
		UI: UIColors{
			TabBg:        "254", // Light gray
			TabFg:        "245", // Medium gray
			TabActiveFg:  "235", // Dark gray
			StatusBg:     "254", // Light gray
			StatusFg:     "235", // Dark gray
			StatusAccent: "26",  // Blue
			InsertAccent: "166", // Orange
			SelectionBg:  "153", // Light blue
			SelectionFg:  "0",   // Black
			ErrorBg:      "217", // Light red
			ErrorFg:      "160", // Red
		},
		Syntax: SyntaxColors{
			Keyword:  "26",  // Blue
			String:   "28",  // Green
			Comment:  "245", // Gray
			Number:   "166", // Orange
			Operator: "90",  // Magenta
			Function: "26",  // Blue
			Type:     "30",  // Teal
		},
	},
}

// DefaultTheme returns the default theme
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// LoadTheme loads a theme by name
// Checks user themes directory first, then falls back to built-in themes
func LoadTheme(name string) Theme {
	if name == "" {
		return DefaultTheme()
	}

	// Try loading from user themes directory
	theme, err := loadUserTheme(name)
	if err == nil {
		return theme
	}

	// Fall back to built-in theme
	if builtin, ok := builtinThemes[name]; ok {
		return builtin
	}

	// Default if not found
	return DefaultTheme()
}

// loadUserTheme attempts to load a theme from the user's themes directory
func loadUserTheme(name string) (Theme, error) {
	themesDir, err := ThemesDir()
	if err != nil {
		return Theme{}, err
	}

	themePath := filepath.Join(themesDir, name+".toml")
	if _, err := os.Stat(themePath); os.IsNotExist(err) {
		return Theme{}, err
	}

	var theme Theme
	if _, err := toml.DecodeFile(themePath, &theme); err != nil {
		return Theme{}, err
	}

	// Merge with default theme to fill in any missing values
	return mergeWithDefault(theme), nil
}

// mergeWithDefault fills in any missing theme values with defaults
func mergeWithDefault(theme Theme) Theme {
	def := DefaultTheme()

	if theme.Name == "" {
		theme.Name = def.Name
	}

	// UI colors
	if theme.UI.TabBg == "" {
		theme.UI.TabBg = def.UI.TabBg
	}
	if theme.UI.TabFg == "" {
		theme.UI.TabFg = def.UI.TabFg
	}
	if theme.UI.TabActiveFg == "" {
		theme.UI.TabActiveFg = def.UI.TabActiveFg
	}
	if theme.UI.StatusBg == "" {
		theme.UI.StatusBg = def.UI.StatusBg
	}
	if theme.UI.StatusFg == "" {
		theme.UI.StatusFg = def.UI.StatusFg
	}
	if theme.UI.StatusAccent == "" {
		theme.UI.StatusAccent = def.UI.StatusAccent
	}
	if theme.UI.InsertAccent == "" {
		theme.UI.InsertAccent = def.UI.InsertAccent
	}
	if theme.UI.SelectionBg == "" {
		theme.UI.SelectionBg = def.UI.SelectionBg
	}
	if theme.UI.SelectionFg == "" {
		theme.UI.SelectionFg = def.UI.SelectionFg
	}
	if theme.UI.ErrorBg == "" {
		theme.UI.ErrorBg = def.UI.ErrorBg
	}
	if theme.UI.ErrorFg == "" {
		theme.UI.ErrorFg = def.UI.ErrorFg
	}

	// Syntax colors
	if theme.Syntax.Keyword == "" {
		theme.Syntax.Keyword = def.Syntax.Keyword
	}
	if theme.Syntax.String == "" {
		theme.Syntax.String = def.Syntax.String
	}
	if theme.Syntax.Comment == "" {
		theme.Syntax.Comment = def.Syntax.Comment
	}
	if theme.Syntax.Number == "" {
		theme.Syntax.Number = def.Syntax.Number
	}
	if theme.Syntax.Operator == "" {
		theme.Syntax.Operator = def.Syntax.Operator
	}
	if theme.Syntax.Function == "" {
		theme.Syntax.Function = def.Syntax.Function
	}
	if theme.Syntax.Type == "" {
		theme.Syntax.Type = def.Syntax.Type
	}

	return theme
}

// ThemeNames returns the list of built-in theme names
func ThemeNames() []string {
	return []string{"default", "dark", "light"}
}

// ListUserThemes returns a list of user-defined theme names
func ListUserThemes() []string {
	themesDir, err := ThemesDir()
	if err != nil {
		return nil
	}

	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil
	}

	var themes []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".toml" {
			themes = append(themes, name[:len(name)-5]) // Remove .toml extension
		}
	}
	return themes
}
