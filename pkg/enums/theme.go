package enums

// Theme is the persisted display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// String implements fmt.Stringer.
func (t Theme) String() string {
	return string(t)
}

// IsValid reports whether the theme is recognized.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// NormalizeTheme coerces unknown values to the light default.
func NormalizeTheme(value string) Theme {
	if t := Theme(value); t.IsValid() {
		return t
	}
	return ThemeLight
}
