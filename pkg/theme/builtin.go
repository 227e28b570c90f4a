package theme

// registerBuiltins registers all built-in themes in the registry.
func registerBuiltins() {
	for _, t := range []Theme{
		defaultTheme(),
		highContrastTheme(),
		gruvboxTheme(),
	} {
		register(t)
	}
}

// defaultTheme returns the dark neutral theme.
func defaultTheme() Theme {
	return Theme{
		Name:       "default",
		Background: "#1e1e1e",
		Foreground: "#d4d4d4",
		Dim:        "#6b6b6b",

		Border:      "#3e3e3e",
		BorderAlert: "#e06c75",

		BuffCountdown: "#4ec970",
		ExpiryDecay:   "#e06c75",
		BashPrompt:    "#ffffff",

		BannerText: "#fb4934",
	}
}

// highContrastTheme returns a palette with saturated primaries for
// terminals where the default reds and greens wash out.
func highContrastTheme() Theme {
	return Theme{
		Name:       "high-contrast",
		Background: "#000000",
		Foreground: "#ffffff",
		Dim:        "#9e9e9e",

		Border:      "#5e5e5e",
		BorderAlert: "#ff0000",

		BuffCountdown: "#00ff00",
		ExpiryDecay:   "#ff0000",
		BashPrompt:    "#ffffff",

		BannerText: "#ff2020",
	}
}

// gruvboxTheme returns the warm retro Gruvbox palette.
func gruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Background: "#282828",
		Foreground: "#ebdbb2",
		Dim:        "#928374",

		Border:      "#504945",
		BorderAlert: "#fb4934",

		BuffCountdown: "#b8bb26",
		ExpiryDecay:   "#fb4934",
		BashPrompt:    "#fbf1c7",

		BannerText: "#fb4934",
	}
}
