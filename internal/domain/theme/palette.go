package theme

// Colors is the browser theme payload consumed by the extension's
// browser.theme.update call. Keys follow the WebExtension theme manifest.
type Colors struct {
	ButtonBackgroundActive  string `json:"button_background_active"`
	ButtonBackgroundHover   string `json:"button_background_hover"`
	Frame                   string `json:"frame"`
	Icons                   string `json:"icons"`
	Popup                   string `json:"popup"`
	PopupBorder             string `json:"popup_border"`
	PopupHighlight          string `json:"popup_highlight"`
	PopupText               string `json:"popup_text"`
	Sidebar                 string `json:"sidebar"`
	SidebarHighlight        string `json:"sidebar_highlight"`
	SidebarText             string `json:"sidebar_text"`
	TabBackgroundText       string `json:"tab_background_text"`
	TabBackgroundSeparator  string `json:"tab_background_separator"`
	TabSelected             string `json:"tab_selected"`
	TabText                 string `json:"tab_text"`
	Toolbar                 string `json:"toolbar"`
	ToolbarField            string `json:"toolbar_field"`
	ToolbarFieldBorderFocus string `json:"toolbar_field_border_focus"`
	ToolbarFieldHighlight   string `json:"toolbar_field_highlight"`
	ToolbarFieldText        string `json:"toolbar_field_text"`
}

// BrowserColors returns the browser palette for a selection, if one exists.
func BrowserColors(sel Selection) (Colors, bool) {
	switch {
	case sel.Theme == Nord && sel.Appearance == Dark:
		return nordDark(), true
	case sel.Theme == RosePine && sel.Appearance == Dark:
		return rosePineDark(), true
	case sel.Theme == RosePine && sel.Appearance == Light:
		return rosePineDawn(), true
	}
	return Colors{}, false
}

func nordDark() Colors {
	return Colors{
		ButtonBackgroundActive:  "#4c566a",
		ButtonBackgroundHover:   "#434c5e",
		Frame:                   "#2e3440",
		Icons:                   "#d8dee9",
		Popup:                   "#3b4252",
		PopupBorder:             "#4c566a",
		PopupHighlight:          "#5e81ac",
		PopupText:               "#eceff4",
		Sidebar:                 "#2e3440",
		SidebarHighlight:        "#5e81ac",
		SidebarText:             "#e5e9f0",
		TabBackgroundText:       "#d8dee9",
		TabBackgroundSeparator:  "#4c566a",
		TabSelected:             "#3b4252",
		TabText:                 "#eceff4",
		Toolbar:                 "#3b4252",
		ToolbarField:            "#2e3440",
		ToolbarFieldBorderFocus: "#88c0d0",
		ToolbarFieldHighlight:   "#5e81ac",
		ToolbarFieldText:        "#eceff4",
	}
}

func rosePineDark() Colors {
	return Colors{
		ButtonBackgroundActive:  "#403d52",
		ButtonBackgroundHover:   "#26233a",
		Frame:                   "#191724",
		Icons:                   "#e0def4",
		Popup:                   "#1f1d2e",
		PopupBorder:             "#26233a",
		PopupHighlight:          "#403d52",
		PopupText:               "#e0def4",
		Sidebar:                 "#191724",
		SidebarHighlight:        "#403d52",
		SidebarText:             "#e0def4",
		TabBackgroundText:       "#908caa",
		TabBackgroundSeparator:  "#26233a",
		TabSelected:             "#26233a",
		TabText:                 "#e0def4",
		Toolbar:                 "#1f1d2e",
		ToolbarField:            "#191724",
		ToolbarFieldBorderFocus: "#ebbcba",
		ToolbarFieldHighlight:   "#403d52",
		ToolbarFieldText:        "#e0def4",
	}
}

func rosePineDawn() Colors {
	return Colors{
		ButtonBackgroundActive:  "#dfdad9",
		ButtonBackgroundHover:   "#f2e9e1",
		Frame:                   "#faf4ed",
		Icons:                   "#575279",
		Popup:                   "#fffaf3",
		PopupBorder:             "#f2e9e1",
		PopupHighlight:          "#dfdad9",
		PopupText:               "#575279",
		Sidebar:                 "#faf4ed",
		SidebarHighlight:        "#dfdad9",
		SidebarText:             "#575279",
		TabBackgroundText:       "#797593",
		TabBackgroundSeparator:  "#f2e9e1",
		TabSelected:             "#f2e9e1",
		TabText:                 "#575279",
		Toolbar:                 "#fffaf3",
		ToolbarField:            "#faf4ed",
		ToolbarFieldBorderFocus: "#d7827e",
		ToolbarFieldHighlight:   "#dfdad9",
		ToolbarFieldText:        "#575279",
	}
}
